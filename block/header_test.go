package block

import (
	"bytes"
	"testing"
)

func TestHeader_NewDefault(t *testing.T) {
	h := NewHeader()
	if h.RootID != 0 {
		t.Errorf("RootID = %d, want 0", h.RootID)
	}
	if h.NextBlockID != 1 {
		t.Errorf("NextBlockID = %d, want 1", h.NextBlockID)
	}
}

func TestHeader_EncodeSize(t *testing.T) {
	h := NewHeader()
	data := h.Encode()
	if len(data) != Size {
		t.Errorf("Encode() length = %d, want %d", len(data), Size)
	}
	if !bytes.HasPrefix(data, []byte(Magic)) {
		t.Errorf("Encode() missing magic tag at offset 0")
	}
	for _, b := range data[24:] {
		if b != 0 {
			t.Fatalf("Encode() left non-zero byte in reserved region")
		}
	}
}

func TestHeader_RoundTrip(t *testing.T) {
	h := &Header{RootID: 7, NextBlockID: 42}
	decoded, err := DecodeHeader(h.Encode())
	if err != nil {
		t.Fatalf("DecodeHeader() error = %v", err)
	}
	if *decoded != *h {
		t.Errorf("DecodeHeader() = %+v, want %+v", decoded, h)
	}
}

func TestHeader_DecodeShort(t *testing.T) {
	_, err := DecodeHeader(make([]byte, Size-1))
	if err != ErrInvalidHeader {
		t.Errorf("DecodeHeader() error = %v, want ErrInvalidHeader", err)
	}
}

func TestHeader_DecodeBadMagic(t *testing.T) {
	buf := NewHeader().Encode()
	copy(buf[0:8], "XXXXXXXX")
	_, err := DecodeHeader(buf)
	if err != ErrInvalidHeader {
		t.Errorf("DecodeHeader() error = %v, want ErrInvalidHeader", err)
	}
}
