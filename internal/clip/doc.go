// Package clip maintains the device-space clip region used while rendering.
//
// Each clip level is an 8-bit coverage mask the size of the target surface.
// Pushing a level intersects the new coverage with the current one, so the top
// of the stack always holds the combined clip of every enclosing clip path.
package clip
