package cmd

import (
	contextPkg "context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/greengivers/nursery/pkg/configs"
	"github.com/greengivers/nursery/pkg/internal/model"
	"github.com/greengivers/nursery/pkg/internal/storage"
	"github.com/greengivers/nursery/pkg/internal/storage/catalog"
)

var sampleProducts = []model.Product{
	{
		Name:          "Royal Palm Tree",
		Category:      "Avenue Trees",
		Price:         2500,
		OriginalPrice: 3000,
		Image:         "/images/royal-palm.jpg",
		Description:   "Majestic royal palm tree perfect for landscaping and creating tropical ambiance in your garden.",
		Features:      []string{"Fast growing", "Drought resistant", "Low maintenance", "Tropical appearance"},
		InStock:       true,
		IsActive:      true,
		StockQuantity: 15,
		Badge:         "Top Selling",
	},
	{
		Name:          "Neem Tree",
		Category:      "Avenue Trees",
		Price:         800,
		OriginalPrice: 1000,
		Image:         "/images/neem-tree.jpg",
		Description:   "Traditional neem tree known for its medicinal properties and natural pest control benefits.",
		Features:      []string{"Medicinal properties", "Natural pest control", "Air purifying", "Hardy tree"},
		Traits:        model.Traits{AirPurifying: true, Medicinal: true},
		InStock:       true,
		IsActive:      true,
		StockQuantity: 25,
		Badge:         "Top Trending",
	},
	{
		Name:          "Rose Plant",
		Category:      "Flower Plants",
		Price:         150,
		OriginalPrice: 200,
		Image:         "/images/rose-plant.jpg",
		Description:   "Beautiful rose plant with fragrant blooms in various colors. Perfect for garden decoration.",
		Features:      []string{"Fragrant flowers", "Multiple colors", "Long blooming", "Easy care"},
		Traits:        model.Traits{Flowering: true, Fragrant: true},
		InStock:       true,
		IsActive:      true,
		StockQuantity: 50,
		Badge:         "Top Trending",
	},
	{
		Name:          "Jasmine Plant",
		Category:      "Flower Plants",
		Price:         120,
		OriginalPrice: 150,
		Image:         "/images/jasmine-plant.jpg",
		Description:   "Aromatic jasmine plant with white fragrant flowers. Ideal for gardens and balconies.",
		Features:      []string{"Highly fragrant", "Night blooming", "Compact size", "Easy to grow"},
		Traits:        model.Traits{Flowering: true, Fragrant: true},
		InStock:       true,
		IsActive:      true,
		StockQuantity: 30,
	},
	{
		Name:          "Mango Tree",
		Category:      "Fruit Plants",
		Price:         1200,
		OriginalPrice: 1500,
		Image:         "/images/mango-tree.jpg",
		Description:   "Premium mango tree variety that produces sweet and juicy mangoes. Great for home gardens.",
		Features:      []string{"Sweet fruit", "High yield", "Disease resistant", "Fast growing"},
		Traits:        model.Traits{Edible: true},
		InStock:       true,
		IsActive:      true,
		StockQuantity: 20,
		Badge:         "Top Trending",
	},
	{
		Name:          "Lemon Tree",
		Category:      "Fruit Plants",
		Price:         600,
		OriginalPrice: 750,
		Image:         "/images/lemon-tree.jpg",
		Description:   "Dwarf lemon tree perfect for containers. Produces fresh lemons year-round.",
		Features:      []string{"Container friendly", "Year-round fruit", "Compact size", "Easy maintenance"},
		Traits:        model.Traits{Edible: true},
		InStock:       true,
		IsActive:      true,
		StockQuantity: 35,
	},
	{
		Name:          "Money Plant",
		Category:      "Indoor Plants",
		Price:         80,
		OriginalPrice: 100,
		Image:         "/images/money-plant.jpg",
		Description:   "Popular indoor plant known for bringing good luck and prosperity. Very easy to maintain.",
		Features:      []string{"Air purifying", "Low light tolerant", "Easy propagation", "Lucky plant"},
		Traits:        model.Traits{AirPurifying: true, LowMaintenance: true},
		InStock:       true,
		IsActive:      true,
		StockQuantity: 100,
		Badge:         "Top Trending",
	},
	{
		Name:          "Snake Plant",
		Category:      "Indoor Plants",
		Price:         200,
		OriginalPrice: 250,
		Image:         "/images/snake-plant.jpg",
		Description:   "Hardy indoor plant with striking vertical leaves. Excellent air purifier and low maintenance.",
		Features:      []string{"Air purifying", "Low maintenance", "Drought tolerant", "Modern look"},
		Traits:        model.Traits{AirPurifying: true, LowMaintenance: true, PetFriendly: true},
		InStock:       true,
		IsActive:      true,
		StockQuantity: 40,
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "replace the catalog with the sample products",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := configs.InitConfig(configPath); err != nil {
			return err
		}

		ctx := contextPkg.Background()

		mgr, err := storage.Init(ctx)
		if err != nil {
			return err
		}
		defer mgr.Close(ctx)

		store := mgr.GetCatalogClient()
		if err := clearCatalog(ctx, store); err != nil {
			return err
		}

		for i := range sampleProducts {
			p, err := store.Create(ctx, &sampleProducts[i])
			if err != nil {
				return fmt.Errorf("seed %q: %w", sampleProducts[i].Name, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d. %s (%s) - %.0f\n", i+1, p.Name, p.Category, p.Price)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "seeded %d products\n", len(sampleProducts))

		return nil
	},
}

// clearCatalog removes every record, both partitions.
func clearCatalog(ctx contextPkg.Context, store *catalog.Client) error {
	for _, active := range []bool{true, false} {
		active := active

		products, err := store.List(ctx, catalog.Filter{IsActive: &active})
		if err != nil {
			return err
		}

		for i := range products {
			if _, err := store.Delete(ctx, products[i].ID); err != nil {
				return err
			}
		}
	}

	return nil
}

func registerSeedCommand() {
	rootCmd.AddCommand(seedCmd)
}
