/*
Package scramble reversibly obscures a pixel buffer with a key, by permuting byte positions and then XOR'ing the result with a keystream.

Note that this is NOT encryption, and it provides no integrity check.
Decrypting with the wrong key, with a different Digest, or with a buffer whose length differs from the original all succeed and produce a well-formed but scrambled buffer.
Nothing distinguishes those cases from success, so keep the decrypted buffer's length identical to the encrypted one (use a lossless container for images).

Encrypt and Decrypt never mutate their input, and hold no shared state, so they're safe to call concurrently with independent buffers.
Each call needs about three times the buffer length in memory.
*/
package scramble
