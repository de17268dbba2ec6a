package seeders

import "github.com/chitralaya/chitralaya/app/models"

// catalog is the gallery's starting inventory.
var catalog = []models.Product{
	{
		Name:        "Radha Krishna",
		Price:       3500,
		Description: "A beautiful depiction of the divine love between Radha and Krishna, capturing the eternal bond and spiritual devotion that represents the highest form of love in Hindu mythology.",
		Images:      models.StringList{"assets/canvas/2.jpeg", "assets/canvas/b.jpeg"},
		Category:    models.CategoryCanvas,
		Size:        "16 × 20 inch",
		Medium:      "Canvas",
	},
	{
		Name:        "Serene Walkway Landscape",
		Price:       2349,
		Description: "Stroll through this peaceful walkway landscape, where the gentle path leads through serene natural beauty, creating a sense of tranquility and contemplation.",
		Images:      models.StringList{"assets/canvas/3.jpeg", "assets/canvas/a.jpeg"},
		Category:    models.CategoryCanvas,
		Size:        "18 × 24 inch",
		Medium:      "Canvas",
	},
	{
		Name:        "Graceful Bird",
		Price:       2349,
		Description: "A graceful bird captured in this beautiful artwork, showcasing the elegance and beauty of nature through artistic expression.",
		Images:      models.StringList{"assets/canvas/7.jpeg", "assets/canvas/d.jpeg"},
		Category:    models.CategoryColor,
		Size:        "A3 size",
		Medium:      "A3 paper",
	},
	{
		Name:        "Divine Krishna",
		Price:       2199,
		Description: "Behold the divine presence of Lord Krishna in this sacred artwork, beautifully capturing the spiritual essence and divine grace.",
		Images:      models.StringList{"assets/canvas/6.jpeg", "assets/canvas/e.jpeg"},
		Category:    models.CategoryCanvas,
		Size:        "14 × 18 inch",
		Medium:      "Canvas",
	},
	{
		Name:        "Charming House",
		Price:       2549,
		Description: "A charming house captured in this beautiful artwork, showcasing architectural beauty and artistic expression.",
		Images:      models.StringList{"assets/color paint/5.jpeg", "assets/color paint/c.jpeg"},
		Category:    models.CategoryColor,
		Size:        "A3 size",
		Medium:      "A3 paper",
	},
	{
		Name:        "Majestic Peacock",
		Price:       2799,
		Description: "A majestic peacock displayed in all its glory, showcasing the beauty and elegance of this magnificent bird through artistic expression.",
		Images:      models.StringList{"assets/canvas/paint1.jpeg", "assets/canvas/g.jpeg"},
		Category:    models.CategoryCanvas,
		Size:        "30 × 20 inch",
		Medium:      "Canvas",
	},
	{
		Name:        "Beautiful Girl",
		Price:       2999,
		Description: "A beautiful girl captured in this elegant artwork, showcasing grace and beauty through artistic expression.",
		Images:      models.StringList{"assets/sketch/8.jpeg", "assets/sketch/f.jpeg"},
		Category:    models.CategorySketches,
		Size:        "12 × 11.5 inch",
		Medium:      "Paper",
	},
	{
		Name:        "Divine Ganesha Portrait",
		Price:       1999,
		Description: "A majestic charcoal sketch capturing the divine presence of Lord Ganesha. This detailed portrait highlights his iconic elephant head, adorned with an elaborate crown and intricate jewelry.",
		Images:      models.StringList{"assets/sketch/sketch1.jpeg", "assets/sketch/ganesh.jpeg"},
		Category:    models.CategorySketches,
		Size:        "A4 size",
		Medium:      "A4 paper",
	},
	{
		Name:        "Mystical Liquid Drip",
		Price:       1899,
		Description: "An intriguing charcoal sketch featuring a woman with her eyes closed and a viscous liquid flowing down the center of her face. The detailed rendering creates a mystical and contemplative quality.",
		Images:      models.StringList{"assets/sketch/sketch 2.jpeg", "assets/sketch/girl3.jpeg"},
		Category:    models.CategorySketches,
		Size:        "A3 size",
		Medium:      "A3 paper",
	},
	{
		Name:        "Serene Young Girl",
		Price:       2199,
		Description: "A poignant charcoal portrait of a young girl with a thoughtful and slightly somber expression. Her long hair frames her face beautifully, and the artist has captured her contemplative mood with exquisite detail.",
		Images:      models.StringList{"assets/sketch/sketch3.jpeg", "assets/sketch/girl2.jpeg"},
		Category:    models.CategorySketches,
		Size:        "A3 size",
		Medium:      "A3 paper",
	},
	{
		Name:        "Elegant Traditional Woman",
		Price:       2099,
		Description: "A serene charcoal sketch of a woman with closed eyes, featuring a distinctive vertical design on her forehead. The artist has captured her peaceful expression with delicate shading and attention to detail.",
		Images:      models.StringList{"assets/sketch/sketch4.jpeg", "assets/sketch/girl.jpeg"},
		Category:    models.CategorySketches,
		Size:        "A3 size",
		Medium:      "A3 paper",
	},
	{
		Name:        "Majestic Tiger Portrait",
		Price:       1799,
		Description: "A powerful and detailed charcoal sketch capturing the intense gaze and majestic presence of a tiger. The intricate stripes, textured fur, and deep shading bring this magnificent creature to life.",
		Images:      models.StringList{"assets/sketch/sketch5.jpeg", "assets/sketch/sher.jpeg"},
		Category:    models.CategorySketches,
		Size:        "A3 size",
		Medium:      "A3 paper",
	},
	{
		Name:        "Serene Mountain River",
		Price:       2499,
		Description: "A tranquil watercolor painting capturing the peaceful essence of an alpine landscape. Majestic snow-capped mountains rise in the background, overlooking a vibrant emerald green river.",
		Images:      models.StringList{"assets/color paint/yo.png", "assets/color paint/yo6.jpeg"},
		Category:    models.CategoryColor,
		Size:        "A3 size",
		Medium:      "A3 paper",
	},
	{
		Name:        "Ancient Stone Pavilion",
		Price:       2399,
		Description: "An elegant watercolor painting featuring a traditional domed chhatri or gazebo in warm reddish-brown stone. The ornate pavilion stands majestically against a soft blue sky.",
		Images:      models.StringList{"assets/color paint/yo2.png", "assets/color paint/yo5.jpeg"},
		Category:    models.CategoryColor,
		Size:        "A4 size",
		Medium:      "A4 paper",
	},
	{
		Name:        "Divine Shiva and Parvati",
		Price:       2299,
		Description: "A sacred watercolor painting depicting the divine couple Lord Shiva and Goddess Parvati in intimate embrace. Shiva's blue-skinned form contrasts beautifully with Parvati's golden radiance.",
		Images:      models.StringList{"assets/color paint/yo3.png", "assets/color paint/yo4.jpeg"},
		Category:    models.CategoryColor,
		Size:        "A3 size",
		Medium:      "A3 paper",
	},
}
