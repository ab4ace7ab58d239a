package store

import (
	"time"

	"github.com/youssefmarket/storefront-api/models"
)

// Demo identities available in demo mode only. These are documented literal
// constants, not configuration.
const (
	DemoAdminEmail     = "admin@youssefmarket.com"
	DemoAdminPassword  = "admin123"
	DemoClientEmail    = "client@example.com"
	DemoClientPassword = "client123"
)

func seedTime(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}

// SeedCategories returns a fresh copy of the demo category dataset
func SeedCategories() []models.Category {
	return []models.Category{
		{ID: "1", Name: "Epicerie", Description: "Produits alimentaires de base et conserves", Image: "https://images.pexels.com/photos/4110251/pexels-photo-4110251.jpeg"},
		{ID: "2", Name: "Hygiène & Beauté", Description: "Produits de soins personnels et cosmétiques", Image: "https://images.pexels.com/photos/3735657/pexels-photo-3735657.jpeg"},
		{ID: "3", Name: "Produits Frais", Description: "Viandes, poissons et produits frais", Image: "https://images.pexels.com/photos/65175/pexels-photo-65175.jpeg"},
		{ID: "4", Name: "Boissons Froides", Description: "Boissons rafraîchissantes et jus", Image: "https://images.pexels.com/photos/544961/pexels-photo-544961.jpeg"},
		{ID: "5", Name: "Gateaux Dessert", Description: "Pâtisseries et desserts sucrés", Image: "https://images.pexels.com/photos/298217/pexels-photo-298217.jpeg"},
		{ID: "6", Name: "Chocolats & Confiseries", Description: "Chocolats fins et bonbons", Image: "https://images.pexels.com/photos/918327/pexels-photo-918327.jpeg"},
		{ID: "7", Name: "Boissons Chaudes", Description: "Café, thé et boissons chaudes", Image: "https://images.pexels.com/photos/302899/pexels-photo-302899.jpeg"},
		{ID: "8", Name: "Produits Laitiers", Description: "Lait, fromages et produits laitiers", Image: "https://images.pexels.com/photos/236010/pexels-photo-236010.jpeg"},
		{ID: "9", Name: "Entretien & Nettoyage", Description: "Produits ménagers et nettoyage", Image: "https://images.pexels.com/photos/4239091/pexels-photo-4239091.jpeg"},
		{ID: "10", Name: "Asiatique", Description: "Spécialités et produits asiatiques", Image: "https://images.pexels.com/photos/1640777/pexels-photo-1640777.jpeg"},
	}
}

// SeedProducts returns a fresh copy of the demo product dataset
func SeedProducts() []models.Product {
	return []models.Product{
		{ID: "1", Name: "Riz Basmati Premium", Description: "Riz basmati de qualité supérieure, grain long", Price: 49.90, Unit: "1kg", CategoryID: "1", CategoryName: "Epicerie", Image: "https://images.pexels.com/photos/723198/pexels-photo-723198.jpeg", InStock: true, Visible: true, CreatedAt: seedTime("2024-01-15T10:30:00Z"), UpdatedAt: seedTime("2024-01-15T10:30:00Z")},
		{ID: "2", Name: "Shampoing Doux", Description: "Shampoing pour cheveux normaux, formule douce", Price: 69.90, Unit: "250ml", CategoryID: "2", CategoryName: "Hygiène & Beauté", Image: "https://images.pexels.com/photos/3735657/pexels-photo-3735657.jpeg", InStock: true, Visible: true, CreatedAt: seedTime("2024-01-15T10:35:00Z"), UpdatedAt: seedTime("2024-01-15T10:35:00Z")},
		{ID: "3", Name: "Saumon Frais", Description: "Filet de saumon frais de Norvège", Price: 189.90, Unit: "500g", CategoryID: "3", CategoryName: "Produits Frais", Image: "https://images.pexels.com/photos/65175/pexels-photo-65175.jpeg", InStock: true, Visible: true, CreatedAt: seedTime("2024-01-15T10:40:00Z"), UpdatedAt: seedTime("2024-01-15T10:40:00Z")},
		{ID: "4", Name: "Coca-Cola", Description: "Boisson gazeuse rafraîchissante", Price: 29.90, Unit: "500ml", CategoryID: "4", CategoryName: "Boissons Froides", Image: "https://images.pexels.com/photos/544961/pexels-photo-544961.jpeg", InStock: true, Visible: true, CreatedAt: seedTime("2024-01-15T10:45:00Z"), UpdatedAt: seedTime("2024-01-15T10:45:00Z")},
		{ID: "5", Name: "Tarte aux Pommes", Description: "Tarte aux pommes artisanale", Price: 89.90, Unit: "1 pièce", CategoryID: "5", CategoryName: "Gateaux Dessert", Image: "https://images.pexels.com/photos/298217/pexels-photo-298217.jpeg", InStock: true, Visible: true, CreatedAt: seedTime("2024-01-15T10:55:00Z"), UpdatedAt: seedTime("2024-01-15T10:55:00Z")},
		{ID: "6", Name: "Chocolat Noir 70%", Description: "Tablette de chocolat noir intense", Price: 49.90, Unit: "100g", CategoryID: "6", CategoryName: "Chocolats & Confiseries", Image: "https://images.pexels.com/photos/918327/pexels-photo-918327.jpeg", InStock: true, Visible: true, CreatedAt: seedTime("2024-01-15T11:00:00Z"), UpdatedAt: seedTime("2024-01-15T11:00:00Z")},
		{ID: "7", Name: "Café Arabica", Description: "Café en grains 100% Arabica", Price: 129.90, Unit: "500g", CategoryID: "7", CategoryName: "Boissons Chaudes", Image: "https://images.pexels.com/photos/302899/pexels-photo-302899.jpeg", InStock: true, Visible: true, CreatedAt: seedTime("2024-01-15T11:05:00Z"), UpdatedAt: seedTime("2024-01-15T11:05:00Z")},
		{ID: "8", Name: "Lait Entier Bio", Description: "Lait entier biologique de ferme", Price: 39.90, Unit: "1L", CategoryID: "8", CategoryName: "Produits Laitiers", Image: "https://images.pexels.com/photos/236010/pexels-photo-236010.jpeg", InStock: true, Visible: true, CreatedAt: seedTime("2024-01-15T11:10:00Z"), UpdatedAt: seedTime("2024-01-15T11:10:00Z")},
		{ID: "9", Name: "Liquide Vaisselle", Description: "Liquide vaisselle concentré citron", Price: 29.90, Unit: "500ml", CategoryID: "9", CategoryName: "Entretien & Nettoyage", Image: "https://images.pexels.com/photos/4239091/pexels-photo-4239091.jpeg", InStock: true, Visible: true, CreatedAt: seedTime("2024-01-15T11:15:00Z"), UpdatedAt: seedTime("2024-01-15T11:15:00Z")},
		{ID: "10", Name: "Sauce Soja", Description: "Sauce soja traditionnelle japonaise", Price: 44.90, Unit: "250ml", CategoryID: "10", CategoryName: "Asiatique", Image: "https://images.pexels.com/photos/1640777/pexels-photo-1640777.jpeg", InStock: true, Visible: true, CreatedAt: seedTime("2024-01-15T11:20:00Z"), UpdatedAt: seedTime("2024-01-15T11:20:00Z")},
		{ID: "11", Name: "Fromage Camembert", Description: "Camembert de Normandie AOP", Price: 59.90, Unit: "250g", CategoryID: "8", CategoryName: "Produits Laitiers", Image: "https://images.pexels.com/photos/773253/pexels-photo-773253.jpeg", InStock: true, Visible: true, CreatedAt: seedTime("2024-01-15T11:25:00Z"), UpdatedAt: seedTime("2024-01-15T11:25:00Z")},
	}
}
