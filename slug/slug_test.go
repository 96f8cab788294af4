package slug_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/CyrilCartoux/watch-pros-sub004/slug"
)

var _ = Describe("Make", func() {
	It("lowercases and hyphenates display names", func() {
		Expect(slug.Make("Audemars Piguet")).To(Equal("audemars-piguet"))
		Expect(slug.Make("GMT-Master II")).To(Equal("gmt-master-ii"))
	})

	It("folds accented characters to ASCII", func() {
		Expect(slug.Make("Glashütte Original")).To(Equal("glashutte-original"))
		Expect(slug.Make("Frédérique Constant")).To(Equal("frederique-constant"))
	})

	It("expands ampersands", func() {
		Expect(slug.Make("H. Moser & Cie.")).To(Equal("h-moser-and-cie"))
	})

	It("collapses runs of separators into one hyphen", func() {
		Expect(slug.Make("A.  Lange  &  Söhne")).To(Equal("a-lange-and-sohne"))
	})

	It("strips leading and trailing separators", func() {
		Expect(slug.Make("  (Rolex)  ")).To(Equal("rolex"))
	})

	It("keeps digits", func() {
		Expect(slug.Make("Seamaster 300M")).To(Equal("seamaster-300m"))
	})

	It("passes non-Latin letters through", func() {
		Expect(slug.Make("精工")).To(Equal("精工"))
	})

	It("is deterministic", func() {
		Expect(slug.Make("Vacheron Constantin")).To(Equal(slug.Make("Vacheron Constantin")))
	})

	It("returns empty for input with no usable characters", func() {
		Expect(slug.Make("!!! ???")).To(BeEmpty())
	})
})

var _ = Describe("Normalize", func() {
	It("lowercases and trims", func() {
		Expect(slug.Normalize("  ROLEX ")).To(Equal("rolex"))
	})

	It("passes a valid slug through unchanged", func() {
		Expect(slug.Normalize("audemars-piguet")).To(Equal("audemars-piguet"))
	})
})

var _ = Describe("NormalizeSet", func() {
	It("canonicalizes, dedupes and sorts", func() {
		Expect(slug.NormalizeSet([]string{"TUDOR", " rolex ", "tudor", "omega"})).
			To(Equal([]string{"omega", "rolex", "tudor"}))
	})

	It("drops empty values", func() {
		Expect(slug.NormalizeSet([]string{"", "  ", "rolex"})).To(Equal([]string{"rolex"}))
	})

	It("is order-independent", func() {
		Expect(slug.NormalizeSet([]string{"b", "a", "c"})).
			To(Equal(slug.NormalizeSet([]string{"c", "b", "a"})))
	})
})
