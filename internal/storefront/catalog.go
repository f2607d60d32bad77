package storefront

import (
	"time"

	"github.com/adyen/storefront-e2e/internal/models"
)

// Category ids of the demo catalog.
const (
	catComputers = iota + 1
	catDesktops
	catNotebooks
	catSoftware
	catElectronics
	catCameraPhoto
	catCellPhones
	catOthers
	catApparel
	catShoes
	catClothing
	catAccessories
	catDigitalDownloads
	catBooks
	catJewelry
	catGiftCards
)

// Manufacturer ids of the demo catalog.
const (
	mfrApple = iota + 1
	mfrHP
	mfrNike
)

type seed struct {
	name, slug   string
	dollars      float64
	category     int
	manufacturer int
	short        string
}

var seeds = []seed{
	{"Build your own computer", "build-your-own-computer", 1200, catDesktops, 0, "Build it"},
	{"Digital Storm VANQUISH 3 Custom Performance PC", "digital-storm-vanquish-3-custom-performance-pc", 1259, catDesktops, 0, "Blazing fast gaming desktop"},
	{"Lenovo IdeaCentre 600 All-in-One PC", "lenovo-ideacentre-600-all-in-one-pc", 500, catDesktops, 0, "All-in-one with a 21.5 inch screen"},
	{"HP Pavilion Desktop Computer", "hp-pavilion-desktop-computer", 85, catDesktops, mfrHP, "Everyday home desktop"},
	{"Apple MacBook Pro 13-inch", "apple-macbook-pro-13-inch", 1800, catNotebooks, mfrApple, "A groundbreaking Retina display"},
	{"Asus N551JK-XO076H Laptop", "asus-n551jk-xo076h-laptop", 1500, catNotebooks, 0, "Laptop for gaming and multimedia"},
	{"HP Envy 6-1180ca 15.6-Inch Sleekbook", "hp-envy-6-1180ca-156-inch-sleekbook", 1460, catNotebooks, mfrHP, "Thin and light with Beats Audio"},
	{"HP Spectre XT Pro UltraBook", "hp-spectre-xt-pro-ultrabook", 1350, catNotebooks, mfrHP, "The business computer that travels"},
	{"Lenovo Thinkpad X1 Carbon Laptop", "lenovo-thinkpad-x1-carbon-laptop", 1360, catNotebooks, 0, "Ultralight business laptop"},
	{"Samsung Series 9 NP900X4C Premium Ultrabook", "samsung-series-9-np900x4c-premium-ultrabook", 1590, catNotebooks, 0, "Premium ultrabook"},
	{"Adobe Photoshop CS4", "adobe-photoshop-cs4", 75, catSoftware, 0, "Image editing for every computer"},
	{"Windows 8 Pro", "windows-8-pro", 65, catSoftware, 0, "Operating system"},
	{"Sound Forge Pro 11 (recurring)", "sound-forge-pro-11-recurring", 54.99, catSoftware, 0, "Audio editing"},
	{"Nikon D5500 DSLR", "nikon-d5500-dslr", 670, catCameraPhoto, 0, "Slim DSLR with touchscreen"},
	{"Leica T Mirrorless Digital Camera", "leica-t-mirrorless-digital-camera", 530, catCameraPhoto, 0, "Mirrorless camera"},
	{"Apple iCam", "apple-icam", 1300, catCameraPhoto, mfrApple, "Photography becomes smart"},
	{"HTC smartphone", "htc-smartphone", 100, catCellPhones, 0, "Android smartphone"},
	{"Nokia Lumia 1020 Windows Phone", "nokia-lumia-1020-windows-phone", 349, catCellPhones, 0, "41 megapixel camera phone"},
	{"Apple iPhone 15", "apple-iphone-15", 1099, catCellPhones, mfrApple, "Dynamic Island"},
	{"Beats Pill 2.0 Wireless Speaker", "beats-pill-20-wireless-speaker", 79.99, catOthers, 0, "Portable speaker"},
	{"Universal 7-8 Inch Tablet Cover", "universal-7-8-inch-tablet-cover", 39, catOthers, 0, "Tablet cover"},
	{"adidas Consortium Campus 80s Running Shoes", "adidas-consortium-campus-80s-running-shoes", 27.56, catShoes, 0, "Retro runners"},
	{"Nike Floral Roshe Customized Running Shoes", "nike-floral-roshe-customized-running-shoes", 40, catShoes, mfrNike, "Floral running shoes"},
	{"Nike SB Zoom Stefan Janoski Medium Mint", "nike-sb-zoom-stefan-janoski-medium-mint", 30, catShoes, mfrNike, "Skate shoes"},
	{"Premium Leather Running Shoes", "premium-leather-running-shoes", 650, catShoes, 0, "Hand made"},
	{"Custom T-Shirt", "custom-t-shirt", 15, catClothing, 0, "Print your own text"},
	{"Levi's 511 Jeans", "levis-511-jeans", 43.5, catClothing, 0, "Slim fit jeans"},
	{"Nike Tailwind Loose Short-Sleeve Running Shirt", "nike-tailwind-loose-short-sleeve-running-shirt", 15, catClothing, mfrNike, "Running shirt"},
	{"Oversized Women T-Shirt", "oversized-women-t-shirt", 24, catClothing, 0, "Oversized fit"},
	{"Obey Propaganda Hat", "obey-propaganda-hat", 30, catAccessories, 0, "Snapback hat"},
	{"Ray Ban Aviator Sunglasses", "ray-ban-aviator-sunglasses", 25, catAccessories, 0, "Classic aviators"},
	{"Reversible Horseferry Check Belt", "reversible-horseferry-check-belt", 45, catAccessories, 0, "Reversible belt"},
	{"If You Wait (donation)", "if-you-wait-donation", 0, catDigitalDownloads, 0, "Album download"},
	{"Night Visions", "night-visions", 2.8, catDigitalDownloads, 0, "Album download"},
	{"Science & Faith", "science-faith", 10, catDigitalDownloads, 0, "Audio book"},
	{"Fahrenheit 451 by Ray Bradbury", "fahrenheit-451-by-ray-bradbury", 27, catBooks, 0, "Classic novel"},
	{"First Prize Pies", "first-prize-pies", 51, catBooks, 0, "Pie recipes"},
	{"Pride and Prejudice", "pride-and-prejudice", 24, catBooks, 0, "Classic novel"},
	{"The Book of Tea", "the-book-of-tea", 18, catBooks, 0, "Essay on tea"},
	{"Elegant Gemstone Necklace", "elegant-gemstone-necklace", 369, catJewelry, 0, "Gemstone necklace"},
	{"Flower Girl Bracelet", "flower-girl-bracelet", 360, catJewelry, 0, "Silver bracelet"},
	{"Vintage Style Engagement Ring", "vintage-style-engagement-ring", 2100, catJewelry, 0, "Engagement ring"},
	{"$25 Virtual Gift Card", "25-virtual-gift-card", 25, catGiftCards, 0, "Sent by email"},
	{"$50 Physical Gift Card", "50-physical-gift-card", 50, catGiftCards, 0, "Sent by post"},
	{"$100 Physical Gift Card", "100-physical-gift-card", 100, catGiftCards, 0, "Sent by post"},
}

// DemoCatalog returns a catalog shaped like the nopCommerce demo store.
func DemoCatalog() models.Catalog {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	products := make([]models.Product, len(seeds))
	for i, s := range seeds {
		createdOn := created.AddDate(0, 0, (i*7)%len(seeds))
		products[i] = models.Product{
			ID:               i + 1,
			Name:             s.name,
			Slug:             s.slug,
			ShortDescription: s.short,
			FullDescription:  s.short + ". " + s.name + ".",
			Price:            int64(s.dollars*100 + 0.5),
			CategoryID:       s.category,
			ManufacturerID:   s.manufacturer,
			DisplayOrder:     i,
			CreatedOn:        createdOn,
		}
	}

	return models.Catalog{
		Categories: []models.Category{
			{ID: catComputers, Name: "Computers", Slug: "computers"},
			{ID: catDesktops, Name: "Desktops", Slug: "desktops", ParentID: catComputers},
			{ID: catNotebooks, Name: "Notebooks", Slug: "notebooks", ParentID: catComputers},
			{ID: catSoftware, Name: "Software", Slug: "software", ParentID: catComputers},
			{ID: catElectronics, Name: "Electronics", Slug: "electronics"},
			{ID: catCameraPhoto, Name: "Camera & photo", Slug: "camera-photo", ParentID: catElectronics},
			{ID: catCellPhones, Name: "Cell phones", Slug: "cell-phones", ParentID: catElectronics},
			{ID: catOthers, Name: "Others", Slug: "others", ParentID: catElectronics},
			{ID: catApparel, Name: "Apparel", Slug: "apparel"},
			{ID: catShoes, Name: "Shoes", Slug: "shoes", ParentID: catApparel},
			{ID: catClothing, Name: "Clothing", Slug: "clothing", ParentID: catApparel},
			{ID: catAccessories, Name: "Accessories", Slug: "accessories", ParentID: catApparel},
			{ID: catDigitalDownloads, Name: "Digital downloads", Slug: "digital-downloads"},
			{ID: catBooks, Name: "Books", Slug: "books"},
			{ID: catJewelry, Name: "Jewelry", Slug: "jewelry"},
			{ID: catGiftCards, Name: "Gift Cards", Slug: "gift-cards"},
		},
		Manufacturers: []models.Manufacturer{
			{ID: mfrApple, Name: "Apple", Slug: "apple"},
			{ID: mfrHP, Name: "HP", Slug: "hp"},
			{ID: mfrNike, Name: "Nike", Slug: "nike"},
		},
		Products: products,
	}
}
