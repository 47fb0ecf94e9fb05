// Validates and reads small text files.
//
// [CheckFile] accepts only existing regular files. [ReadTrimmed] returns
// the content without surrounding whitespace and rejects blank files, so a
// caller can tell a missing file from an empty one.
package files
