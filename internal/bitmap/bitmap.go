// Package bitmap stores one bit per index, such as a black or white label
// for every vertex of a mesh.
package bitmap

// Bitmap is a compact, fixed length sequence of bits.
type Bitmap struct {
	Bytes []byte
	Len   int
}

// New returns a bitmap of n bits, all unset.
func New(n int) *Bitmap {
	return &Bitmap{
		Bytes: make([]byte, (n+7)/8),
		Len:   n,
	}
}

// maskIndex returns the bit mask and byte index for the bit at i.
func (b *Bitmap) maskIndex(i int) (byte, int) {
	return 1 << uint(i&07), i >> 3
}

// At returns whether bit i is set; bits outside the bitmap are never set.
func (b *Bitmap) At(i int) bool {
	if i < 0 || i >= b.Len {
		return false
	}
	mask, index := b.maskIndex(i)
	return b.Bytes[index]&mask != 0
}

// Set sets or resets bit i; bits outside the bitmap are ignored.
func (b *Bitmap) Set(i int, bit bool) {
	if i < 0 || i >= b.Len {
		return
	}
	mask, index := b.maskIndex(i)
	if bit {
		b.Bytes[index] |= mask
	} else {
		b.Bytes[index] &^= mask
	}
}

// Count returns how many bits are set.
func (b *Bitmap) Count() int {
	n := 0
	for i := 0; i < b.Len; i++ {
		if b.At(i) {
			n++
		}
	}
	return n
}

// Indices returns, in increasing order, every index whose bit equals bit.
func (b *Bitmap) Indices(bit bool) []int {
	var res []int
	for i := 0; i < b.Len; i++ {
		if b.At(i) == bit {
			res = append(res, i)
		}
	}
	return res
}

// Equal returns true if both bitmaps hold the same bits.
func (b *Bitmap) Equal(other *Bitmap) bool {
	if b.Len != other.Len {
		return false
	}
	for i := 0; i < b.Len; i++ {
		if b.At(i) != other.At(i) {
			return false
		}
	}
	return true
}
