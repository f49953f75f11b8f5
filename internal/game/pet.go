// File: internal/game/pet.go
package game

import (
	"time"

	"github.com/google/uuid"
)

// Pet 宠物记录，随宠物物品一起落入背包
type Pet struct {
	ID         string
	ItemID     int
	Name       string
	Expiration time.Time
}

// NewPet 实例化一只新宠物
func NewPet(itemID int, name string, expiration time.Time) *Pet {
	return &Pet{
		ID:         uuid.New().String(),
		ItemID:     itemID,
		Name:       name,
		Expiration: expiration,
	}
}

// IsPetItem 判断物品是否为宠物类物品
// 宠物物品 ID 固定落在 500 万段
func IsPetItem(itemID int) bool {
	return itemID/10000 == 500
}
