// Package behaviors holds the entity scripts plugged into physics.Body hooks.
// Each script implements only the capabilities it needs.
package behaviors
