package hashers

const (
	fnvOffset64 uint64 = 0xCBF29CE484222325
	fnvPrime64  uint64 = 0x100000001B3
)

type fnv64a struct {
	name string
	hash uint64
}

// NewFNV64a creates an FNV-1a 64-bit chunk hasher. Its block size is a
// single byte, the smallest the partitioning layer allows, which means the
// carry buffer in front of it stays permanently empty and Digest always
// receives an empty tail.
func NewFNV64a() *fnv64a {
	return &fnv64a{name: string(FNV64a), hash: fnvOffset64}
}

func (f *fnv64a) BlockSize() int {
	return 1
}

func (f *fnv64a) Consume(block []byte) {
	f.hash ^= uint64(block[0])
	f.hash *= fnvPrime64
}

func (f *fnv64a) Digest(tail []byte) uint64 {
	return f.hash
}

func (f *fnv64a) Name() string {
	return f.name
}
