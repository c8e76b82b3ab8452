package service

import "github.com/veggiemart/shop-api/internal/models"

const imageBaseURL = "https://images.unsplash.com/"

// SampleProducts returns a fresh copy of the demo catalog
func SampleProducts() []models.Product {
	return []models.Product{
		{
			Name:        "Tomato",
			Category:    "Vegetable",
			Price:       2,
			Available:   true,
			BestSeller:  true,
			Image:       imageBaseURL + "photo-1582515073490-399813d8d6a5",
			Description: "Fresh juicy tomatoes.",
			Nutrition:   "Vitamin C & K",
		},
		{
			Name:        "Potato",
			Category:    "Vegetable",
			Price:       1,
			Available:   true,
			BestSeller:  false,
			Image:       imageBaseURL + "photo-1582515073485-b7e0e39b676f",
			Description: "Organic potatoes.",
			Nutrition:   "Potassium, Vitamin B6",
		},
		{
			Name:        "Carrot",
			Category:    "Vegetable",
			Price:       2,
			Available:   true,
			BestSeller:  true,
			Image:       imageBaseURL + "photo-1617196030118-216c1f16d9c6",
			Description: "Crunchy carrots.",
			Nutrition:   "Vitamin A, Fiber",
		},
		{
			Name:        "Apple",
			Category:    "Fruit",
			Price:       3,
			Available:   true,
			BestSeller:  true,
			Image:       imageBaseURL + "photo-1567306226416-28f0efdc88ce",
			Description: "Sweet apples.",
			Nutrition:   "Vitamin C, Fiber",
		},
		{
			Name:        "Banana",
			Category:    "Fruit",
			Price:       2,
			Available:   false,
			BestSeller:  false,
			Image:       imageBaseURL + "photo-1574226516831-e1dff420e43e",
			Description: "Energy booster bananas.",
			Nutrition:   "Potassium, Fiber",
		},
	}
}
