package fileaccess

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReaderAtBridgeRoundTrip(t *testing.T) {
	data := pattern(1000)
	b, err := NewReaderAtBridge(bytes.NewReader(data), 1000)
	if err != nil {
		t.Fatalf("NewReaderAtBridge() error = %v", err)
	}
	defer b.Close()

	buf := make([]byte, 100)
	if got := b.ReadBlock(900, buf); got != ReadSuccess {
		t.Fatalf("ReadBlock() = %d, want %d", got, ReadSuccess)
	}
	if diff := cmp.Diff(data[900:], buf); diff != "" {
		t.Errorf("buffer mismatch (-want +got):\n%s", diff)
	}
}

type failingReaderAt struct{}

func (failingReaderAt) ReadAt([]byte, int64) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestReaderAtBridgeReadError(t *testing.T) {
	b, err := NewReaderAtBridge(failingReaderAt{}, 100)
	if err != nil {
		t.Fatalf("NewReaderAtBridge() error = %v", err)
	}
	defer b.Close()

	if got := b.ReadBlock(0, make([]byte, 10)); got != ReadFailure {
		t.Errorf("ReadBlock() = %d, want %d", got, ReadFailure)
	}
}

type shortReaderAt struct{}

func (shortReaderAt) ReadAt(p []byte, _ int64) (int, error) {
	return len(p) / 2, nil
}

func TestReaderAtBridgeShortRead(t *testing.T) {
	b, err := NewReaderAtBridge(shortReaderAt{}, 100)
	if err != nil {
		t.Fatalf("NewReaderAtBridge() error = %v", err)
	}
	defer b.Close()

	// Short reads are failures, not partial successes.
	if got := b.ReadBlock(0, make([]byte, 10)); got != ReadFailure {
		t.Errorf("ReadBlock() = %d, want %d", got, ReadFailure)
	}
}

func TestReaderAtBridgeNegativeSize(t *testing.T) {
	if _, err := NewReaderAtBridge(bytes.NewReader(nil), -1); !errors.Is(err, ErrNegativeSize) {
		t.Errorf("NewReaderAtBridge(-1) error = %v, want %v", err, ErrNegativeSize)
	}
}

func TestBytesBridge(t *testing.T) {
	data := pattern(64)
	b := NewBytesBridge(data)
	defer b.Close()

	if got := b.Size(); got != 64 {
		t.Errorf("Size() = %d, want 64", got)
	}

	buf := make([]byte, 16)
	if got := b.ReadBlock(8, buf); got != ReadSuccess {
		t.Fatalf("ReadBlock() = %d, want %d", got, ReadSuccess)
	}
	if !bytes.Equal(buf, data[8:24]) {
		t.Error("buffer does not match source")
	}

	if got := b.ReadBlock(60, make([]byte, 16)); got != ReadFailure {
		t.Errorf("ReadBlock past end = %d, want %d", got, ReadFailure)
	}
}
