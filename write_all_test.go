// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aio_test

import (
	"bytes"
	"testing"

	"code.hybscloud.com/aio"
)

func TestWriteAllDrivesPartialWrites(t *testing.T) {
	want := pattern(100)
	dst := &recordWriter{limit: 7}
	w := aio.NewWriteAll(dst, want)

	if err := w.Poll(aio.NewContext(nil)); err != nil {
		t.Fatalf("unexpected err %v", err)
	}
	if !bytes.Equal(dst.data, want) {
		t.Fatalf("written bytes differ from input")
	}
	mustPanic(t, "poll of completed WriteAll", func() { w.Poll(aio.NewContext(nil)) })
}

func TestWriteAllWriteZeroFatal(t *testing.T) {
	w := aio.NewWriteAll(zeroWriter{}, []byte("abc"))
	err := w.Poll(aio.NewContext(nil))
	if !aio.IsWriteZero(err) {
		t.Fatalf("want ErrWriteZero got %v", err)
	}
}

func TestWriteAllPendingResumes(t *testing.T) {
	dst := &pendingWriter{writeStalls: 2}
	w := aio.NewWriteAll(dst, []byte("abc"))
	cx := aio.NewContext(nil)

	for i := 0; i < 2; i++ {
		if err := w.Poll(cx); !aio.IsWouldBlock(err) {
			t.Fatalf("stall %d: want ErrWouldBlock got %v", i, err)
		}
	}
	if dst.registrations != 2 {
		t.Fatalf("want a waker registration per stall got %d", dst.registrations)
	}
	if err := w.Poll(cx); err != nil {
		t.Fatalf("unexpected err %v", err)
	}
	if string(dst.rec.data) != "abc" {
		t.Fatalf("want abc got %q", dst.rec.data)
	}
}

func TestWriteAllEmptyInput(t *testing.T) {
	var dst recordWriter
	w := aio.NewWriteAll(&dst, nil)
	if err := w.Poll(aio.NewContext(nil)); err != nil {
		t.Fatalf("unexpected err %v", err)
	}
	if len(dst.data) != 0 {
		t.Fatalf("writer touched for empty input")
	}
}

func TestWindow(t *testing.T) {
	p := []byte("abcdefgh")
	w := aio.NewWindow(p)
	if string(w.Bytes()) != "abcdefgh" {
		t.Fatalf("full window mismatch: %q", w.Bytes())
	}

	w.Set(2, 6)
	if string(w.Bytes()) != "cdef" {
		t.Fatalf("want cdef got %q", w.Bytes())
	}
	start, end := w.Range()
	if start != 2 || end != 6 {
		t.Fatalf("want range [2,6) got [%d,%d)", start, end)
	}

	w.Advance(3)
	if string(w.Bytes()) != "f" {
		t.Fatalf("want f got %q", w.Bytes())
	}

	mustPanic(t, "Set out of range", func() { w.Set(1, 9) })
	mustPanic(t, "Advance past end", func() { w.Advance(2) })
}

func TestWindowedWriteAll(t *testing.T) {
	// Submit the middle of a buffer without reslicing away the rest.
	p := []byte("##payload##")
	w := aio.NewWindow(p)
	w.Set(2, 9)

	var dst recordWriter
	if err := aio.NewWriteAll(&dst, w.Bytes()).Poll(aio.NewContext(nil)); err != nil {
		t.Fatalf("unexpected err %v", err)
	}
	if string(dst.data) != "payload" {
		t.Fatalf("want payload got %q", dst.data)
	}
}
