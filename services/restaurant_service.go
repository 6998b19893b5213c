package services

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/satyam-pandey/scan-to-order/models"
	"github.com/satyam-pandey/scan-to-order/store"
)

type MenuItemInput struct {
	Name        string
	Description string
	Price       float64
	CategoryID  *uint
	ImageURL    *string
	IsAvailable bool
}

type CreateRestaurantInput struct {
	Name      string
	Address   *string
	Phone     *string
	MenuItems []MenuItemInput
}

type ProvisionedRestaurant struct {
	RestaurantID   uint
	Name           string
	MenuItemsCount int
}

// RestaurantService provisions a restaurant together with its initial menu
// in one unit of work, scoped to the authenticated owner.
type RestaurantService struct {
	store   *store.Store
	timeout time.Duration
}

func NewRestaurantService(st *store.Store) *RestaurantService {
	return &RestaurantService{store: st, timeout: defaultUnitOfWorkTimeout}
}

// CreateRestaurantWithMenu inserts the restaurant row and, when menu items
// are supplied, batch-inserts them referencing the new restaurant id. Any
// failure rolls back both, a restaurant is never left without its intended
// initial menu.
func (s *RestaurantService) CreateRestaurantWithMenu(ctx context.Context, ownerID uint, in CreateRestaurantInput) (*ProvisionedRestaurant, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, ErrNameRequired
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	restaurant := models.Restaurant{
		Name:    in.Name,
		Address: in.Address,
		Phone:   in.Phone,
		UserID:  ownerID,
	}

	err := s.store.WithTransaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(&restaurant).Error; err != nil {
			return err
		}
		if len(in.MenuItems) == 0 {
			return nil
		}
		items := make([]models.MenuItem, 0, len(in.MenuItems))
		for _, m := range in.MenuItems {
			items = append(items, models.MenuItem{
				RestaurantID: restaurant.ID,
				CategoryID:   m.CategoryID,
				Name:         m.Name,
				Description:  m.Description,
				Price:        m.Price,
				ImageURL:     m.ImageURL,
				IsAvailable:  m.IsAvailable,
			})
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return nil, err
	}

	return &ProvisionedRestaurant{
		RestaurantID:   restaurant.ID,
		Name:           restaurant.Name,
		MenuItemsCount: len(in.MenuItems),
	}, nil
}
