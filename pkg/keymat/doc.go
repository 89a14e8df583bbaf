/*
Package keymat derives the key material used to scramble a pixel buffer: a permutation of buffer positions and an XOR keystream.

Note that this is NOT encryption.
There is no salt, no iteration count, and no integrity tag, so a weak key is easily brute forced and known plaintext reveals the keystream.
This falls squarely under the obfuscation category, and it is NOT recommended for security critical use.

# How it works:

A seed is computed as the digest of the key followed by a domain string ("perm" for the permutation, "xor" for the keystream).
The seed is expanded into an unbounded byte stream by hashing the seed followed by an 8 byte big-endian block counter, starting at 0, and concatenating the blocks.

The permutation starts as the identity and is shuffled with Fisher-Yates, walking i from n-1 down to 1 and swapping i with an index drawn uniformly from [0, i] using the "perm" stream.
Indexes are drawn by reading big-endian uint64 values and rejecting values that would bias the modulo.

The keystream is simply the first n bytes of the "xor" stream.

Both are pure functions of the key, the length, and the Digest, so the same inputs yield the same output on every platform.

# Important note:

The same key, length, and Digest must be provided to reverse the process.
Failing to do so will result in a garbled buffer, with no error to signal it.
An empty key is accepted, but yields a fixed and predictable permutation and keystream.
*/
package keymat
