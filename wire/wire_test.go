package wire_test

import (
	"bytes"

	"github.com/nabbar/evalbroker/wire"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Request frame", func() {
	It("should be exactly a 12-byte header plus context then code, no padding", func() {
		frame := wire.EncodeRequest(5000, []byte("abc"), []byte("hi"))
		Expect(frame).To(HaveLen(wire.HeaderSize + 3 + 2))
		Expect(frame[wire.HeaderSize : wire.HeaderSize+3]).To(Equal([]byte("abc")))
		Expect(frame[wire.HeaderSize+3:]).To(Equal([]byte("hi")))
	})

	It("should round-trip through DecodeRequest", func() {
		frame := wire.EncodeRequest(5000, []byte("abc"), []byte("hi"))

		timeoutMs, ctx, code, err := wire.DecodeRequest(bytes.NewReader(frame))
		Expect(err).ToNot(HaveOccurred())
		Expect(timeoutMs).To(Equal(uint32(5000)))
		Expect(ctx).To(Equal([]byte("abc")))
		Expect(code).To(Equal([]byte("hi")))
	})

	It("should encode a zero timeout as 'no timeout'", func() {
		frame := wire.EncodeRequest(0, nil, []byte("x"))
		timeoutMs, ctx, code, err := wire.DecodeRequest(bytes.NewReader(frame))
		Expect(err).ToNot(HaveOccurred())
		Expect(timeoutMs).To(Equal(uint32(0)))
		Expect(ctx).To(BeEmpty())
		Expect(code).To(Equal([]byte("x")))
	})
})

var _ = Describe("Response frame", func() {
	It("should round-trip through ReadLength and ReadPayload", func() {
		frame := wire.EncodeResponse([]byte("hello world"))
		r := bytes.NewReader(frame)

		n, err := wire.ReadLength(r)
		Expect(err).ToNot(HaveOccurred())
		Expect(n).To(Equal(uint32(11)))

		payload, err := wire.ReadPayload(r, n, wire.DefaultMaxPayload)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(payload)).To(Equal("hello world"))
	})

	It("should truncate a declared length beyond the cap", func() {
		payload := bytes.Repeat([]byte("x"), 2048)
		frame := wire.EncodeResponse(payload)
		r := bytes.NewReader(frame)

		n, err := wire.ReadLength(r)
		Expect(err).ToNot(HaveOccurred())
		Expect(n).To(Equal(uint32(2048)))

		got, err := wire.ReadPayload(r, n, wire.DefaultMaxPayload)
		Expect(err).ToNot(HaveOccurred())
		Expect(got).To(HaveLen(wire.DefaultMaxPayload))
	})

	It("should error on a short payload read", func() {
		_, err := wire.ReadPayload(bytes.NewReader([]byte("ab")), 10, wire.DefaultMaxPayload)
		Expect(err).To(HaveOccurred())
	})
})
