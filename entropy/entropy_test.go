package entropy_test

import (
	"math"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/vibeshield/shield/entropy"
)

var _ = Describe("Entropy", func() {
	Describe("Shannon", func() {
		It("is zero for the empty string", func() {
			Expect(entropy.Shannon("")).To(BeZero())
		})

		It("is zero for a single character", func() {
			Expect(entropy.Shannon("a")).To(BeZero())
			Expect(entropy.Shannon("zzzzzzzz")).To(BeZero())
		})

		It("is log2(n) when every character is distinct", func() {
			Expect(entropy.Shannon("abcd")).To(BeNumerically("~", 2, 1e-9))
			Expect(entropy.Shannon("abcdefgh")).To(BeNumerically("~", 3, 1e-9))
			Expect(entropy.Shannon("0123456789ABCDEF")).To(BeNumerically("~", 4, 1e-9))
			Expect(entropy.Shannon("Xq7Lp2Vz9Rt4Wm8Nk3Bj6Hc1Fd5Gs0Ya")).To(BeNumerically("~", 5, 1e-9))
		})

		It("only depends on the character frequencies", func() {
			Expect(entropy.Shannon("aabbbc")).To(BeNumerically("~", entropy.Shannon("bcabab"), 1e-12))
			Expect(entropy.Shannon("sk-live-123")).To(BeNumerically("~", entropy.Shannon("321-evil-ks"), 1e-12))
		})

		It("returns the same value on every call", func() {
			for _, s := range []string{"aabbbc", "Xq7Lp2Vz9Rt4Wm8Nk3Bj6Hc1Fd5Gs0Ya", "sk-proj-abcdefghij0123456789"} {
				first := entropy.Shannon(s)
				for i := 0; i < 500; i++ {
					Expect(entropy.Shannon(s)).To(Equal(first))
				}
			}
		})

		It("counts multi-byte characters once", func() {
			Expect(entropy.Shannon("äöü")).To(BeNumerically("~", math.Log2(3), 1e-9))
		})

		It("is never negative", func() {
			for _, s := range []string{"a", "ab", "aab", "YOUR_API_KEY_HERE", "\n\t "} {
				Expect(entropy.Shannon(s)).To(BeNumerically(">=", 0))
			}
		})
	})

	DescribeTable("Classify",
		func(e float64, expected entropy.Confidence) {
			Expect(entropy.Classify(e)).To(Equal(expected))
		},
		Entry("well above 4.0", 4.8, entropy.High),
		Entry("just above 4.0", 4.01, entropy.High),
		Entry("exactly 4.0", 4.0, entropy.Medium),
		Entry("just above 3.5", 3.6, entropy.Medium),
		Entry("exactly 3.5", 3.5, entropy.Low),
		Entry("zero", 0.0, entropy.Low),
	)

	Describe("IsHighEntropy", func() {
		It("rejects strings shorter than eight characters", func() {
			Expect(entropy.IsHighEntropy("abcdefg", 0)).To(BeFalse())
		})

		It("accepts strings at the threshold", func() {
			Expect(entropy.IsHighEntropy("abcdefgh", 3.0)).To(BeTrue())
		})

		It("rejects strings below the threshold", func() {
			Expect(entropy.IsHighEntropy("abcdefgh", 3.5)).To(BeFalse())
		})
	})

	Describe("Analyze", func() {
		It("reports a placeholder as unlikely to be a secret", func() {
			analysis := entropy.Analyze("YOUR_API_KEY_HERE")
			Expect(analysis.Text).To(Equal("YOUR_API_KEY_HERE"))
			Expect(analysis.Length).To(Equal(17))
			Expect(analysis.IsLikelySecret).To(BeFalse())
			Expect(analysis.Confidence).To(Equal(entropy.Low))
		})

		It("reports a random token as a likely secret", func() {
			analysis := entropy.Analyze("Xq7Lp2Vz9Rt4Wm8Nk3Bj6Hc1Fd5Gs0Ya")
			Expect(analysis.Length).To(Equal(32))
			Expect(analysis.Entropy).To(Equal(5.0))
			Expect(analysis.IsLikelySecret).To(BeTrue())
			Expect(analysis.Confidence).To(Equal(entropy.High))
		})
	})
})
