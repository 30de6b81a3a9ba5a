// Package fvcrypt implements the FlipViewer content protection scheme.
//
// The scheme was reverse engineered from the deployed viewer. It layers a
// homebrew chained-feedback mode over SAFER SK-128: each 8-byte block is
// whitened with a feedback accumulator before (encrypt) or after (decrypt)
// the block cipher, and the accumulator is advanced by XOR with the
// ciphertext block in both directions. Unaligned tails are finished with a
// one-shot CFB stream keyed on the current accumulator. Keys derive from
// textual passphrases via RIPEMD-256; a secondary passphrase for the access
// code field derives via a doubled MD5.
//
// Nothing in the scheme authenticates the data. String operations can at
// least detect a wrong passphrase through invalid UTF-8; object streams
// decrypt to garbage silently, and the caller's downstream parser is the
// only check. Adding integrity here would break compatibility with the
// deployed format, so none is added.
package fvcrypt
