package repository

import "washmap-api/internal/domain/entity"

// DefaultFacilities returns the static catalog served when no location is
// supplied. A fresh slice is returned on every call.
func DefaultFacilities() []entity.Facility {
	return []entity.Facility{
		{
			ID:           "1",
			Name:         "Premium Wash & Shine",
			Latitude:     37.7749,
			Longitude:    -122.4194,
			Address:      "123 Market Street, San Francisco, CA 94102",
			QueueCount:   3,
			Rating:       4.8,
			TotalReviews: 245,
			Reviews: []entity.Review{
				{User: "John D.", Rating: 5, Comment: "Excellent service! Very thorough cleaning."},
				{User: "Sarah M.", Rating: 5, Comment: "Best car wash in the city. Highly recommend!"},
				{User: "Mike R.", Rating: 4, Comment: "Good service, slightly pricey but worth it."},
			},
			Services: []entity.Service{
				{ID: "s1", Name: "Basic Exterior Wash", Price: 25, Duration: 20},
				{ID: "s2", Name: "Premium Full Service", Price: 55, Duration: 45},
				{ID: "s3", Name: "Interior Deep Clean", Price: 40, Duration: 35},
				{ID: "s4", Name: "Wax & Polish", Price: 65, Duration: 60},
			},
		},
		{
			ID:           "2",
			Name:         "SpeedyClean Express",
			Latitude:     37.7849,
			Longitude:    -122.4094,
			Address:      "456 Valencia Street, San Francisco, CA 94110",
			QueueCount:   7,
			Rating:       4.3,
			TotalReviews: 189,
			Reviews: []entity.Review{
				{User: "Emily T.", Rating: 4, Comment: "Fast and efficient. Gets the job done."},
				{User: "David L.", Rating: 5, Comment: "Great value for money!"},
				{User: "Rachel B.", Rating: 4, Comment: "Quick service but can get busy during weekends."},
			},
			Services: []entity.Service{
				{ID: "s1", Name: "Express Wash", Price: 15, Duration: 15},
				{ID: "s2", Name: "Standard Wash & Vacuum", Price: 30, Duration: 25},
				{ID: "s3", Name: "Deluxe Package", Price: 45, Duration: 40},
			},
		},
		{
			ID:           "3",
			Name:         "Eco-Friendly Auto Spa",
			Latitude:     37.7649,
			Longitude:    -122.4294,
			Address:      "789 Mission Street, San Francisco, CA 94103",
			QueueCount:   1,
			Rating:       4.9,
			TotalReviews: 312,
			Reviews: []entity.Review{
				{User: "Tom H.", Rating: 5, Comment: "Love that they use eco-friendly products!"},
				{User: "Lisa K.", Rating: 5, Comment: "Immaculate service and great for the environment."},
				{User: "James P.", Rating: 5, Comment: "The best! My car looks brand new."},
			},
			Services: []entity.Service{
				{ID: "s1", Name: "Green Exterior Wash", Price: 28, Duration: 25},
				{ID: "s2", Name: "Eco Full Service", Price: 50, Duration: 45},
				{ID: "s3", Name: "Organic Interior Detail", Price: 48, Duration: 40},
				{ID: "s4", Name: "Complete Eco Package", Price: 75, Duration: 70},
			},
		},
		{
			ID:           "4",
			Name:         "Luxury Detail Center",
			Latitude:     37.7549,
			Longitude:    -122.4394,
			Address:      "321 Folsom Street, San Francisco, CA 94107",
			QueueCount:   5,
			Rating:       4.7,
			TotalReviews: 198,
			Reviews: []entity.Review{
				{User: "Amanda S.", Rating: 5, Comment: "Premium service at its finest!"},
				{User: "Chris W.", Rating: 4, Comment: "Very detailed work. A bit expensive but worth it."},
				{User: "Nicole F.", Rating: 5, Comment: "They treat your car like royalty!"},
			},
			Services: []entity.Service{
				{ID: "s1", Name: "Signature Wash", Price: 35, Duration: 30},
				{ID: "s2", Name: "Luxury Full Detail", Price: 85, Duration: 90},
				{ID: "s3", Name: "Paint Correction", Price: 120, Duration: 120},
				{ID: "s4", Name: "Ultimate Care Package", Price: 150, Duration: 150},
			},
		},
		{
			ID:           "5",
			Name:         "QuickWash Station",
			Latitude:     37.7949,
			Longitude:    -122.3994,
			Address:      "654 Howard Street, San Francisco, CA 94105",
			QueueCount:   0,
			Rating:       4.1,
			TotalReviews: 156,
			Reviews: []entity.Review{
				{User: "Kevin M.", Rating: 4, Comment: "Simple and fast. Perfect for a quick clean."},
				{User: "Sophia G.", Rating: 4, Comment: "Convenient location and good prices."},
				{User: "Brian Y.", Rating: 4, Comment: "Does what it says. No frills, no fuss."},
			},
			Services: []entity.Service{
				{ID: "s1", Name: "Quick Rinse", Price: 12, Duration: 10},
				{ID: "s2", Name: "Basic Clean", Price: 22, Duration: 20},
				{ID: "s3", Name: "Standard Package", Price: 35, Duration: 30},
			},
		},
	}
}
