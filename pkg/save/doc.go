// Package save parses, edits, and losslessly reconstructs save files for
// a family of GBA role-playing games. The byte layout of every modeled
// field comes from a variant.Config, so one codec serves the original
// release and the community builds that rearrange it.
//
// The flow is: Parse (or ParseFile) slices the roster out of the image
// and hands back a Container; Container.Entries exposes one typed Entry
// per occupied roster slot; callers edit entries through field-scoped
// setters; Reconstruct writes the edited entries back into a clone of
// the original image, recomputes the declared sector checksums, and
// returns bytes the game will accept. The original Container is never
// mutated, so it stays valid for comparison and undo.
package save
