/*
Package xor combines a buffer with a keystream using a bitwise XOR.

Note that this is NOT encryption, since it is easily reversible.
Applying the same keystream a second time restores the original bytes, which is exactly how the scramble package undoes its XOR stage.

# Important note:

The keystream must be at least as long as the data, and must be the same keystream used to screen it.
Unlike a repeating key, a keystream is never reused from the start, so only as many bytes as the shortest input are screened.
*/
package xor
