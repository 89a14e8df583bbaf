/*
Package imgfile moves images between files and the flat pixel buffers that the scramble package operates on.

An Image is a row-major, channel-interleaved byte buffer with 1 (gray), 3 (RGB), or 4 (non-premultiplied RGBA) channels.
Samples are 8 or 16 bits, and 16-bit samples are stored big-endian.
The channel count follows the decoded pixel format, never the pixel values, so an encrypted image whose alpha bytes all happen to be 0xff still reads back with 4 channels.
Decoding recognizes PNG, JPEG, GIF, BMP, TIFF, WebP, and the raw container by content.
Encoding picks the container from the output path's extension.

# Lossless containers:

A scrambled buffer must come back byte-for-byte, with the same dimensions and channel count, or decryption silently produces garbage.
PNG, TIFF, and the raw container (.pxr) are lossless for every layout.
BMP is lossless for 8-bit gray and RGB, but drops alpha and 16-bit samples, so those layouts are refused for BMP.
JPEG and GIF are refused unless AllowLossy is given, which is only sensible for a decrypted image.
*/
package imgfile
