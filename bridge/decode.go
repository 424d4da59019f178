package bridge

import (
	"sync"
	"unsafe"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// nativeOrder is the byte order of UTF-16 code units handed over by the
// managed runtime, which always uses the host's order.
var nativeOrder = func() unicode.Endianness {
	x := uint16(1)
	if *(*byte)(unsafe.Pointer(&x)) == 1 {
		return unicode.LittleEndian
	}
	return unicode.BigEndian
}()

// decoder converts UTF-16 to UTF-8 into a reusable buffer. Unpaired
// surrogates become U+FFFD.
type decoder struct {
	dec *encoding.Decoder
	buf []byte
}

var decoders = sync.Pool{
	New: func() interface{} {
		return &decoder{
			dec: unicode.UTF16(nativeOrder, unicode.IgnoreBOM).NewDecoder(),
			buf: make([]byte, 0, 256),
		}
	},
}

func getDecoder() *decoder {
	return decoders.Get().(*decoder)
}

func putDecoder(d *decoder) {
	if cap(d.buf) > 64<<10 {
		return
	}
	decoders.Put(d)
}

// decode returns the UTF-8 form of s. The result aliases d's buffer and is
// valid until the next call.
func (d *decoder) decode(s []uint16) ([]byte, error) {
	if len(s) == 0 {
		return d.buf[:0], nil
	}
	src := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*2)

	// a code unit never needs more than 3 bytes of UTF-8
	need := len(s) * 3
	if cap(d.buf) < need {
		d.buf = make([]byte, 0, need)
	}
	dst := d.buf[:need]

	d.dec.Reset()
	n, _, err := d.dec.Transform(dst, src, true)
	return dst[:n], err
}

// DecodeString converts s to a Go string.
func DecodeString(s []uint16) (string, error) {
	d := getDecoder()
	defer putDecoder(d)
	b, err := d.decode(s)
	return string(b), err
}
