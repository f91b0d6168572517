package memory

import (
	"time"

	"github.com/hawkerbazaar/storefront/internal/domain"
)

// Demo dataset for the HawkerBazaar storefront: a dozen products from
// six women-led stalls across four Mumbai street markets, plus two
// historical orders so the dashboards have something to show.

var seedProducts = []domain.Product{
	{
		ID:            "1",
		Name:          "Embroidered Cotton Kurti",
		Price:         899,
		OriginalPrice: 1499,
		Category:      "Clothing",
		Image:         "https://images.unsplash.com/photo-1620505803018-0cfa73c18e93?w=400",
		Images:        []string{"https://images.unsplash.com/photo-1620505803018-0cfa73c18e93?w=800"},
		Description:   "Beautiful hand-embroidered cotton kurti perfect for casual wear. Features intricate floral patterns and comfortable fit.",
		VendorID:      "v1",
		VendorName:    "Priya's Boutique",
		Market:        "Hill Road, Bandra",
		InStock:       true,
	},
	{
		ID:            "2",
		Name:          "Traditional Jhumka Earrings",
		Price:         449,
		OriginalPrice: 699,
		Category:      "Jewelry",
		Image:         "https://images.unsplash.com/photo-1760786933663-327c858d5434?w=400",
		Images:        []string{"https://images.unsplash.com/photo-1760786933663-327c858d5434?w=800"},
		Description:   "Elegant oxidized silver jhumka earrings with traditional design. Perfect for ethnic outfits and special occasions.",
		VendorID:      "v2",
		VendorName:    "Meera Jewels",
		Market:        "Colaba Causeway",
		InStock:       true,
	},
	{
		ID:            "3",
		Name:          "Colorful Bandhani Dupatta",
		Price:         599,
		OriginalPrice: 999,
		Category:      "Accessories",
		Image:         "https://images.unsplash.com/photo-1648396004864-f74eb58e8d90?w=400",
		Images:        []string{"https://images.unsplash.com/photo-1648396004864-f74eb58e8d90?w=800"},
		Description:   "Vibrant bandhani dupatta with traditional tie-dye patterns. Made from pure cotton, perfect for adding color to any outfit.",
		VendorID:      "v3",
		VendorName:    "Saree Palace",
		Market:        "Linking Road, Bandra",
		InStock:       true,
	},
	{
		ID:            "4",
		Name:          "Brass Wall Hanging",
		Price:         1299,
		OriginalPrice: 1999,
		Category:      "Home Decor",
		Image:         "https://images.unsplash.com/photo-1760192159044-881ce9629623?w=400",
		Images:        []string{"https://images.unsplash.com/photo-1760192159044-881ce9629623?w=800"},
		Description:   "Handcrafted brass wall hanging featuring traditional Indian motifs. Adds an ethnic touch to your home decor.",
		VendorID:      "v4",
		VendorName:    "Craftswomen Collective",
		Market:        "Colaba Causeway",
		InStock:       true,
	},
	{
		ID:          "5",
		Name:        "Embellished Potli Bag",
		Price:       399,
		Category:    "Bags",
		Image:       "https://images.unsplash.com/photo-1564422170194-896b89110ef8?w=400",
		Description: "Beautiful embellished potli bag perfect for weddings and parties. Features intricate beadwork and drawstring closure.",
		VendorID:    "v5",
		VendorName:  "Anjali's Creations",
		Market:      "Hill Road, Bandra",
		InStock:     true,
	},
	{
		ID:            "6",
		Name:          "Block Print Cotton Saree",
		Price:         1799,
		OriginalPrice: 2999,
		Category:      "Clothing",
		Image:         "https://images.unsplash.com/photo-1610030469983-98e550d6193c?w=400",
		Description:   "Elegant block print cotton saree with traditional designs. Comfortable for all-day wear with beautiful drape.",
		VendorID:      "v3",
		VendorName:    "Saree Palace",
		Market:        "Linking Road, Bandra",
		InStock:       true,
	},
	{
		ID:          "7",
		Name:        "Oxidized Silver Necklace",
		Price:       799,
		Category:    "Jewelry",
		Image:       "https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?w=400",
		Description: "Statement oxidized silver necklace with traditional pendant. Perfect for ethnic and fusion wear.",
		VendorID:    "v2",
		VendorName:  "Meera Jewels",
		Market:      "Colaba Causeway",
		InStock:     true,
	},
	{
		ID:            "8",
		Name:          "Embroidered Juttis",
		Price:         699,
		OriginalPrice: 1199,
		Category:      "Footwear",
		Image:         "https://images.unsplash.com/photo-1603487742131-4160ec999306?w=400",
		Description:   "Comfortable embroidered juttis with traditional Indian designs. Perfect for ethnic wear and special occasions.",
		VendorID:      "v6",
		VendorName:    "Footwear Hub",
		Market:        "Fashion Street",
		InStock:       true,
	},
	{
		ID:          "9",
		Name:        "Mandala Wall Art",
		Price:       899,
		Category:    "Home Decor",
		Image:       "https://images.unsplash.com/photo-1513519245088-0e12902e35ca?w=400",
		Description: "Hand-painted mandala wall art on canvas. Adds a spiritual and artistic touch to any room.",
		VendorID:    "v4",
		VendorName:  "Craftswomen Collective",
		Market:      "Colaba Causeway",
		InStock:     true,
	},
	{
		ID:          "10",
		Name:        "Beaded Clutch Purse",
		Price:       549,
		Category:    "Bags",
		Image:       "https://images.unsplash.com/photo-1566150905458-1bf1fc113f0d?w=400",
		Description: "Elegant beaded clutch purse perfect for evening events. Features intricate beadwork and secure closure.",
		VendorID:    "v5",
		VendorName:  "Anjali's Creations",
		Market:      "Hill Road, Bandra",
		InStock:     true,
	},
	{
		ID:          "11",
		Name:        "Silk Palazzo Set",
		Price:       1499,
		Category:    "Clothing",
		Image:       "https://images.unsplash.com/photo-1583391265902-e6d7e1365d1f?w=400",
		Description: "Comfortable silk palazzo set with matching kurta. Perfect for summer parties and festive occasions.",
		VendorID:    "v1",
		VendorName:  "Priya's Boutique",
		Market:      "Hill Road, Bandra",
		InStock:     true,
	},
	{
		ID:            "12",
		Name:          "Temple Jewelry Set",
		Price:         1299,
		OriginalPrice: 1999,
		Category:      "Jewelry",
		Image:         "https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?w=400",
		Description:   "Traditional temple jewelry set including necklace, earrings, and tikka. Perfect for weddings and special occasions.",
		VendorID:      "v2",
		VendorName:    "Meera Jewels",
		Market:        "Colaba Causeway",
		InStock:       true,
	},
}

var seedVendors = []domain.Vendor{
	{ID: "v1", Name: "Priya's Boutique", OwnerName: "Priya Shah", Phone: "+91 98765 00001", Market: "Hill Road, Bandra", Approved: true, CommissionRate: 15, TotalSales: 45000, ProductsCount: 23},
	{ID: "v2", Name: "Meera Jewels", OwnerName: "Meera Kapoor", Phone: "+91 98765 00002", Market: "Colaba Causeway", Approved: true, CommissionRate: 12, TotalSales: 67000, ProductsCount: 45},
	{ID: "v3", Name: "Saree Palace", OwnerName: "Sunita Desai", Phone: "+91 98765 00003", Market: "Linking Road, Bandra", Approved: true, CommissionRate: 15, TotalSales: 89000, ProductsCount: 56},
	{ID: "v4", Name: "Craftswomen Collective", OwnerName: "Anjali Reddy", Phone: "+91 98765 00004", Market: "Colaba Causeway", Approved: true, CommissionRate: 10, TotalSales: 34000, ProductsCount: 18},
	{ID: "v5", Name: "Anjali's Creations", OwnerName: "Anjali Mehta", Phone: "+91 98765 00005", Market: "Hill Road, Bandra", Approved: true, CommissionRate: 15, TotalSales: 23000, ProductsCount: 12},
	{ID: "v6", Name: "Footwear Hub", OwnerName: "Kavita Singh", Phone: "+91 98765 00006", Market: "Fashion Street", Approved: false, CommissionRate: 15, TotalSales: 0, ProductsCount: 8},
}

var seedOrders = []domain.Order{
	{
		ID:        "ORD001",
		CreatedAt: time.Date(2025, time.November, 15, 0, 0, 0, 0, time.UTC),
		Status:    domain.StatusDelivered,
		Total:     2197,
		Items: []domain.OrderItem{
			{ProductID: "1", Name: "Embroidered Cotton Kurti", Quantity: 1, Price: 899, Image: "https://images.unsplash.com/photo-1620505803018-0cfa73c18e93?w=200"},
			{ProductID: "4", Name: "Brass Wall Hanging", Quantity: 1, Price: 1299, Image: "https://images.unsplash.com/photo-1760192159044-881ce9629623?w=200"},
		},
		ShippingAddress: domain.Address{
			Name:    "Priya Sharma",
			Phone:   "+91 98765 43210",
			Address: "Flat 302, Shanti Apartments, Carter Road",
			City:    "Mumbai",
			Pincode: "400050",
		},
	},
	{
		ID:        "ORD002",
		CreatedAt: time.Date(2025, time.November, 14, 0, 0, 0, 0, time.UTC),
		Status:    domain.StatusShipped,
		Total:     1048,
		Items: []domain.OrderItem{
			{ProductID: "2", Name: "Traditional Jhumka Earrings", Quantity: 1, Price: 449, Image: "https://images.unsplash.com/photo-1760786933663-327c858d5434?w=200"},
			{ProductID: "3", Name: "Colorful Bandhani Dupatta", Quantity: 1, Price: 599, Image: "https://images.unsplash.com/photo-1648396004864-f74eb58e8d90?w=200"},
		},
		ShippingAddress: domain.Address{
			Name:    "Anjali Desai",
			Phone:   "+91 98765 43211",
			Address: "15, Sea View Apartments, Marine Drive",
			City:    "Mumbai",
			Pincode: "400002",
		},
	},
}
