// File: internal/game/catalog_loader.go
package game

import (
	"encoding/json"
	"os"

	"github.com/friendsofgo/errors"
)

// catalogFile 物品档案文件的结构
type catalogFile struct {
	Items []struct {
		ItemID int    `json:"item_id"`
		Name   string `json:"name"`
	} `json:"items"`
	Equips []EquipTemplate `json:"equips"`
}

// LoadCatalogFile 从 JSON 文件装载物品档案
func LoadCatalogFile(path string) (*StaticCatalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "读取物品档案文件失败")
	}

	var file catalogFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, errors.Wrap(err, "解析物品档案文件失败")
	}

	catalog := NewStaticCatalog()
	for _, item := range file.Items {
		catalog.RegisterItem(item.ItemID, item.Name)
	}
	for i := range file.Equips {
		tpl := file.Equips[i]
		catalog.RegisterEquip(&tpl)
	}
	return catalog, nil
}
