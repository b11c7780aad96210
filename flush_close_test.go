// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aio_test

import (
	"testing"

	"code.hybscloud.com/aio"
)

func TestFlushResolvesToWriter(t *testing.T) {
	dst := &pendingWriter{flushStalls: 1}
	f := aio.NewFlush(dst)
	cx := aio.NewContext(nil)

	if _, err := f.Poll(cx); !aio.IsWouldBlock(err) {
		t.Fatalf("want ErrWouldBlock got %v", err)
	}
	w, err := f.Poll(cx)
	if err != nil {
		t.Fatalf("unexpected err %v", err)
	}
	if w != aio.Writer(dst) {
		t.Fatalf("flush did not hand back the underlying writer")
	}
	if dst.rec.flushes != 1 {
		t.Fatalf("want one flush got %d", dst.rec.flushes)
	}
	mustPanic(t, "poll of completed Flush", func() { f.Poll(cx) })
}

func TestCloseResolvesToWriter(t *testing.T) {
	var dst recordWriter
	c := aio.NewClose(&dst)

	w, err := c.Poll(aio.NewContext(nil))
	if err != nil {
		t.Fatalf("unexpected err %v", err)
	}
	if w != aio.Writer(&dst) {
		t.Fatalf("close did not hand back the underlying writer")
	}
	if dst.closes != 1 {
		t.Fatalf("want one close got %d", dst.closes)
	}
	mustPanic(t, "poll of completed Close", func() { c.Poll(aio.NewContext(nil)) })
}
