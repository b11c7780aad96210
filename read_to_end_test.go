// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aio_test

import (
	"bytes"
	"testing"

	"code.hybscloud.com/aio"
)

func TestReadToEndAccumulates(t *testing.T) {
	want := pattern(1000)
	src := chunked(want, 7)
	r := aio.NewReadToEnd(src, nil)

	buf, n, err := r.Poll(aio.NewContext(nil))
	if err != nil {
		t.Fatalf("unexpected err %v", err)
	}
	if n != 1000 {
		t.Fatalf("want n=1000 got %d", n)
	}
	if !bytes.Equal(buf, want) {
		t.Fatalf("accumulated bytes differ from source")
	}
	mustPanic(t, "poll of completed ReadToEnd", func() { r.Poll(aio.NewContext(nil)) })
}

func TestReadToEndPreservesPrefix(t *testing.T) {
	src := chunked([]byte("world"), 2)
	r := aio.NewReadToEnd(src, []byte("hello "))

	buf, n, err := r.Poll(aio.NewContext(nil))
	if err != nil {
		t.Fatalf("unexpected err %v", err)
	}
	if n != 5 {
		t.Fatalf("want n=5 (appended only) got %d", n)
	}
	if string(buf) != "hello world" {
		t.Fatalf("want 'hello world' got %q", buf)
	}
}

func TestReadToEndEmptyStream(t *testing.T) {
	r := aio.NewReadToEnd(chunked(nil, 1), nil)
	buf, n, err := r.Poll(aio.NewContext(nil))
	if err != nil || n != 0 || len(buf) != 0 {
		t.Fatalf("want empty result got (%d bytes, n=%d, %v)", len(buf), n, err)
	}
}

func TestReadToEndTrustedReader(t *testing.T) {
	// A NopInitializer reader takes the no-zero-fill path end to end.
	want := pattern(300)
	src := &rawReader{data: want}
	r := aio.NewReadToEnd(src, nil)

	buf, n, err := r.Poll(aio.NewContext(nil))
	if err != nil {
		t.Fatalf("unexpected err %v", err)
	}
	if n != 300 || !bytes.Equal(buf, want) {
		t.Fatalf("trusted-reader accumulation mismatch: n=%d", n)
	}
}

func TestReadToEndPendingResumes(t *testing.T) {
	src := &gatedReader{}
	r := aio.NewReadToEnd(src, nil)
	cx := aio.NewContext(nil)

	if _, _, err := r.Poll(cx); !aio.IsWouldBlock(err) {
		t.Fatalf("want ErrWouldBlock got %v", err)
	}
	src.release()
	src.data = []byte("tail")
	buf, n, err := r.Poll(cx)
	if err != nil {
		t.Fatalf("unexpected err %v", err)
	}
	if n != 4 || string(buf) != "tail" {
		t.Fatalf("want 4 bytes 'tail' got %d %q", n, buf)
	}
}
