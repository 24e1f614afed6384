package context_test

import (
	libctx "github.com/nabbar/evalbroker/context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Config map", func() {
	It("should store and load a value by key", func() {
		cfg := libctx.NewConfig[string]()
		cfg.Store("go", "language entry")

		v, ok := cfg.Load("go")
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal("language entry"))
	})

	It("should report ok=false for a missing key", func() {
		cfg := libctx.NewConfig[string]()
		_, ok := cfg.Load("missing")
		Expect(ok).To(BeFalse())
	})

	It("should delete a key", func() {
		cfg := libctx.NewConfig[string]()
		cfg.Store("python", "entry")
		cfg.Delete("python")

		_, ok := cfg.Load("python")
		Expect(ok).To(BeFalse())
	})

	It("should walk every stored key", func() {
		cfg := libctx.NewConfig[string]()
		cfg.Store("go", 1)
		cfg.Store("python", 2)

		seen := map[string]bool{}
		cfg.Walk(func(key string, val interface{}) bool {
			seen[key] = true
			return true
		})

		Expect(seen).To(HaveKey("go"))
		Expect(seen).To(HaveKey("python"))
	})

	It("should clean all entries", func() {
		cfg := libctx.NewConfig[string]()
		cfg.Store("go", 1)
		cfg.Clean()

		_, ok := cfg.Load("go")
		Expect(ok).To(BeFalse())
	})
})
