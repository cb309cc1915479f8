// Package entities holds the builtin schema tables for the standard drawing
// entities. Importing the package (usually for side effect) registers every
// table into the default registry.
//
// Group codes and defaults follow the DXF reference: geometry doubles default
// to zero, scale factors to one, extrusion vectors to (0,0,1). Fields that
// appeared in later format revisions carry the revision they were introduced
// in, so the codec gates them uniformly.
package entities
