// Package fileutil provides the per-file building blocks used when turning a
// directory tree into a Markdown snapshot.
//
// # Purpose
//
// The fileutil package is responsible for:
//   - Deciding whether a path falls under an ignored name (IsIgnored)
//   - Reading a file with a size ceiling and lossy UTF-8 decoding (ReadFileSafely)
//   - Deriving the file suffix and Markdown language tag (Suffix, LanguageTag)
//   - Normalizing user-supplied extension and ignore lists
//
// # Ignore Matching
//
// Ignore matching is name based, not prefix based. A path is ignored when any
// of its components equals a member of the ignore set exactly. This means a
// plain file called ".git" is ignored just like a ".git" directory:
//
//	ignore := fileutil.NewNameSet(fileutil.DefaultIgnoreDirs)
//	fileutil.IsIgnored("src/node_modules/x.js", ignore) // true
//	fileutil.IsIgnored("src/node_modules_old/x.js", ignore) // false
//	fileutil.IsIgnored("pkg/.git", ignore) // true
//
// # Safe Reads
//
// ReadFileSafely never returns an error. Oversized files are reported at WARN,
// I/O failures at ERROR, and both come back as ok == false so the caller can
// simply move on to the next file:
//
//	content, ok := fileutil.ReadFileSafely(path, 10, log)
//	if !ok {
//	    continue
//	}
//
// Invalid UTF-8 sequences are dropped from the returned content rather than
// failing the read, so binary or mixed-encoding files degrade to whatever
// valid text they contain.
//
// # Suffixes
//
// Suffix follows the usual "last dot" rule with two exceptions: a leading dot
// (".bashrc") and a trailing dot ("notes.") do not start a suffix. LanguageTag
// is the suffix without its dot, or "" when there is none.
package fileutil
