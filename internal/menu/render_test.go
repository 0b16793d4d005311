package menu

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Render", func() {
	var (
		data MenuData
		doc  Document
	)

	JustBeforeEach(func() {
		doc = Render(data)
	})

	When("the menu has no categories", func() {
		BeforeEach(func() {
			data = MenuData{
				RestaurantName: "Corner Bistro",
				RawText:        "BREAKFAST\nEggs Benedict 12.50",
			}
		})

		It("should carry the raw text fallback", func() {
			Expect(doc.RawText).To(Equal("BREAKFAST\nEggs Benedict 12.50"))
		})

		It("should have no sections", func() {
			Expect(doc.Sections).To(BeEmpty())
		})
	})

	When("a main category has an image match", func() {
		BeforeEach(func() {
			// is_main unset defaults to main
			data = MenuData{
				RestaurantName: "Corner Bistro",
				Categories: []MenuCategory{
					{
						Name: "Breakfast Specials",
						Items: []MenuItem{
							{Name: "Eggs Benedict", Price: "$12.50"},
						},
					},
				},
			}
		})

		It("should select the image header variant", func() {
			Expect(doc.Sections).To(HaveLen(1))
			Expect(doc.Sections[0].ImageHeader()).To(BeTrue())
		})

		It("should attach the matched image and emoji", func() {
			Expect(doc.Sections[0].Image).NotTo(BeNil())
			Expect(doc.Sections[0].Emoji()).To(Equal("🍳"))
		})

		It("should treat the category as main", func() {
			Expect(doc.Sections[0].Main).To(BeTrue())
		})
	})

	When("a category has no image match", func() {
		BeforeEach(func() {
			notMain := false
			data = MenuData{
				Categories: []MenuCategory{
					{Name: "House Favorites"},
					{Name: "Chef's Picks", IsMain: &notMain},
				},
			}
		})

		It("should select the plain header variant for both", func() {
			Expect(doc.Sections[0].PlainHeader()).To(BeTrue())
			Expect(doc.Sections[1].PlainHeader()).To(BeTrue())
		})

		It("should keep the main flag for sizing", func() {
			Expect(doc.Sections[0].Main).To(BeTrue())
			Expect(doc.Sections[1].Main).To(BeFalse())
		})

		It("should have no emoji", func() {
			Expect(doc.Sections[0].Emoji()).To(BeEmpty())
		})
	})

	When("a sub-category has an image match", func() {
		BeforeEach(func() {
			notMain := false
			data = MenuData{
				Categories: []MenuCategory{
					{Name: "Desserts", IsMain: &notMain},
				},
			}
		})

		It("should select the inline emoji variant with no image block", func() {
			Expect(doc.Sections[0].EmojiHeader()).To(BeTrue())
			Expect(doc.Sections[0].Emoji()).To(Equal("🍰"))
		})
	})

	When("a category has no name", func() {
		BeforeEach(func() {
			data = MenuData{
				Categories: []MenuCategory{
					{Items: []MenuItem{{Name: "Bread Basket", Price: "$4"}}},
				},
			}
		})

		It("should render items without any header", func() {
			Expect(doc.Sections[0].Variant).To(Equal(HeaderNone))
			Expect(doc.Sections[0].Items).To(HaveLen(1))
		})
	})

	When("the menu has several categories and items", func() {
		BeforeEach(func() {
			data = MenuData{
				RestaurantName: "Corner Bistro",
				Categories: []MenuCategory{
					{
						Name: "Appetizers",
						Items: []MenuItem{
							{Name: "Bruschetta", Price: "$8"},
							{Name: "Calamari", Price: "$11"},
						},
					},
					{
						Name: "Mains",
						Items: []MenuItem{
							{Name: "Ribeye", Price: "market price"},
						},
					},
				},
			}
		})

		It("should preserve category order", func() {
			Expect(doc.Sections[0].Title).To(Equal("Appetizers"))
			Expect(doc.Sections[1].Title).To(Equal("Mains"))
		})

		It("should preserve item order and pass prices through untouched", func() {
			Expect(doc.Sections[0].Items[0].Name).To(Equal("Bruschetta"))
			Expect(doc.Sections[0].Items[1].Name).To(Equal("Calamari"))
			Expect(doc.Sections[1].Items[0].Price).To(Equal("market price"))
		})

		It("should carry the restaurant name", func() {
			Expect(doc.RestaurantName).To(Equal("Corner Bistro"))
		})
	})
})
