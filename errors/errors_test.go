package errors_test

import (
	stderrors "errors"

	liberr "github.com/nabbar/evalbroker/errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Error construction", func() {
	Describe("New", func() {
		It("should carry the given code and message", func() {
			e := liberr.New(liberr.MinPkgCatalog, "language not found")
			Expect(e.GetCode()).To(Equal(liberr.NewCodeError(liberr.MinPkgCatalog)))
			Expect(e.Error()).To(ContainSubstring("language not found"))
		})

		It("should record parent errors reachable via Unwrap", func() {
			parent := stderrors.New("dial tcp: connection refused")
			e := liberr.New(liberr.MinPkgPersistent, "connect failed", parent)
			Expect(e.Unwrap()).To(HaveLen(1))
		})
	})

	Describe("IsCode / HasCode", func() {
		It("should match its own code", func() {
			e := liberr.New(liberr.MinPkgExec, "spawn failed")
			Expect(e.IsCode(liberr.NewCodeError(liberr.MinPkgExec))).To(BeTrue())
			Expect(e.IsCode(liberr.NewCodeError(liberr.MinPkgWire))).To(BeFalse())
		})

		It("should find a code carried by a parent", func() {
			parent := liberr.New(liberr.MinPkgWire, "short read")
			e := liberr.New(liberr.MinPkgPersistent, "evaluation failed", parent)
			Expect(e.HasCode(liberr.NewCodeError(liberr.MinPkgWire))).To(BeTrue())
		})
	})

	Describe("Make", func() {
		It("should wrap a plain error with code zero", func() {
			plain := stderrors.New("boom")
			e := liberr.Make(plain)
			Expect(e.GetCode().Uint16()).To(Equal(uint16(0)))
		})

		It("should return the same Error when already one", func() {
			orig := liberr.New(liberr.MinPkgCLI, "flag parse error")
			Expect(liberr.Make(orig)).To(Equal(orig))
		})

		It("should return nil for a nil error", func() {
			Expect(liberr.Make(nil)).To(BeNil())
		})
	})

	Describe("package helpers", func() {
		It("Is reports whether an error is of type Error", func() {
			Expect(liberr.Is(liberr.New(liberr.MinPkgCatalog, "x"))).To(BeTrue())
			Expect(liberr.Is(stderrors.New("plain"))).To(BeFalse())
		})

		It("Has checks code across the whole chain", func() {
			parent := liberr.New(liberr.MinPkgWire, "truncated frame")
			e := liberr.New(liberr.MinPkgPersistent, "read failed", parent)
			Expect(liberr.Has(e, liberr.NewCodeError(liberr.MinPkgWire))).To(BeTrue())
			Expect(liberr.Has(e, liberr.NewCodeError(liberr.MinPkgExec))).To(BeFalse())
		})
	})

	Describe("GetTrace", func() {
		It("should capture a non-empty call site", func() {
			e := liberr.New(liberr.MinPkgCatalog, "trace me")
			Expect(e.GetTrace()).ToNot(BeEmpty())
		})
	})
})
