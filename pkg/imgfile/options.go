package imgfile

import "github.com/nethra567/PRODIGY-CS-02/pkg/keymat"

// Params configures encoding and the file transforms.
type Params struct {
	Digest     keymat.Digest
	AllowLossy bool
}

// Opt operates on Params, and is accepted by Encode and the file transforms.
type Opt = func(params *Params)

// UseDigest selects the digest used to derive key material.
// Decryption must use the same digest as encryption.
func UseDigest(digest keymat.Digest) Opt {
	return func(params *Params) {
		params.Digest = digest
	}
}

// AllowLossy permits writing lossy containers such as JPEG.
func AllowLossy(val ...bool) Opt {
	return func(params *Params) {
		if len(val) > 0 {
			params.AllowLossy = val[0]
			return
		}
		params.AllowLossy = true
	}
}

func newParams(opts []Opt) *Params {
	params := &Params{}
	for _, opt := range opts {
		opt(params)
	}
	return params
}
