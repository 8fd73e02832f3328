// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"fmt"

	"github.com/pdiddy/mobile-advisor/pkg/types"
)

// SeedDevices is the reference catalog: a snapshot of current-generation
// handsets across price tiers. Order matters; it becomes catalog order.
var SeedDevices = []types.Device{
	dev("Apple", "iPhone 15 Pro Max", types.TierHigh, 8, 256, 48, 4441, 6.7, "iOS", "A17 Pro", "5G"),
	dev("Apple", "iPhone 15 Pro", types.TierHigh, 8, 128, 48, 3274, 6.1, "iOS", "A17 Pro", "5G"),
	dev("Apple", "iPhone 15", types.TierMediumHigh, 6, 128, 48, 3349, 6.1, "iOS", "A16 Bionic", "5G"),
	dev("Apple", "iPhone 14", types.TierMedium, 6, 128, 12, 3279, 6.1, "iOS", "A15 Bionic", "5G"),
	dev("Apple", "iPhone SE", types.TierLowMedium, 4, 64, 12, 2018, 4.7, "iOS", "A15 Bionic", "4G"),
	dev("Samsung", "Galaxy S24 Ultra", types.TierHigh, 12, 256, 200, 5000, 6.8, "Android", "Snapdragon 8 Gen 3", "5G"),
	dev("Samsung", "Galaxy S24", types.TierMediumHigh, 8, 128, 50, 4000, 6.2, "Android", "Snapdragon 8 Gen 3", "5G"),
	dev("Samsung", "Galaxy A54", types.TierMedium, 8, 128, 50, 5000, 6.4, "Android", "Exynos 1380", "5G"),
	dev("Samsung", "Galaxy A34", types.TierLowMedium, 6, 128, 48, 5000, 6.6, "Android", "MediaTek Dimensity 1080", "5G"),
	dev("Samsung", "Galaxy A14", types.TierLow, 4, 64, 50, 5000, 6.6, "Android", "MediaTek Helio G80", "4G"),
	dev("Google", "Pixel 8 Pro", types.TierHigh, 12, 128, 50, 5050, 6.7, "Android", "Google Tensor G3", "5G"),
	dev("Google", "Pixel 8", types.TierMediumHigh, 8, 128, 50, 4575, 6.2, "Android", "Google Tensor G3", "5G"),
	dev("Google", "Pixel 7a", types.TierMedium, 8, 128, 64, 4385, 6.1, "Android", "Google Tensor G2", "5G"),
	dev("OnePlus", "OnePlus 12", types.TierHigh, 12, 256, 50, 5400, 6.82, "Android", "Snapdragon 8 Gen 3", "5G"),
	dev("OnePlus", "OnePlus 11", types.TierMediumHigh, 8, 128, 50, 5000, 6.7, "Android", "Snapdragon 8 Gen 2", "5G"),
	dev("OnePlus", "OnePlus Nord 3", types.TierMedium, 8, 128, 50, 5000, 6.74, "Android", "MediaTek Dimensity 9000", "5G"),
	dev("Xiaomi", "Xiaomi 14 Ultra", types.TierHigh, 16, 512, 50, 5300, 6.73, "Android", "Snapdragon 8 Gen 3", "5G"),
	dev("Xiaomi", "Xiaomi 14", types.TierMediumHigh, 8, 256, 50, 4610, 6.36, "Android", "Snapdragon 8 Gen 3", "5G"),
	dev("Xiaomi", "Redmi Note 13 Pro", types.TierMedium, 8, 256, 200, 5100, 6.67, "Android", "Snapdragon 7s Gen 2", "5G"),
	dev("Xiaomi", "Redmi 13C", types.TierLow, 4, 128, 50, 5000, 6.74, "Android", "MediaTek Helio G85", "4G"),
	dev("Huawei", "P60 Pro", types.TierHigh, 8, 256, 48, 4815, 6.67, "Android", "Snapdragon 8+ Gen 1", "5G"),
	dev("Huawei", "Nova 11", types.TierMedium, 8, 256, 50, 4500, 6.7, "Android", "Snapdragon 778G", "4G"),
	dev("Oppo", "Find X7 Ultra", types.TierHigh, 16, 512, 50, 5000, 6.82, "Android", "Snapdragon 8 Gen 3", "5G"),
	dev("Oppo", "Reno 11", types.TierMedium, 8, 256, 50, 5000, 6.7, "Android", "MediaTek Dimensity 8050", "5G"),
	dev("Vivo", "X100 Pro", types.TierHigh, 12, 256, 50, 5400, 6.78, "Android", "MediaTek Dimensity 9300", "5G"),
	dev("Vivo", "V29", types.TierMedium, 8, 256, 50, 4600, 6.78, "Android", "Snapdragon 778G", "5G"),
	dev("Realme", "GT 5 Pro", types.TierMediumHigh, 12, 256, 50, 5400, 6.7, "Android", "Snapdragon 8 Gen 3", "5G"),
	dev("Realme", "C67", types.TierLow, 6, 128, 108, 5000, 6.72, "Android", "Snapdragon 685", "4G"),
	dev("Motorola", "Edge 50 Ultra", types.TierHigh, 12, 512, 50, 4500, 6.7, "Android", "Snapdragon 8s Gen 3", "5G"),
	dev("Motorola", "Moto G84", types.TierMedium, 8, 256, 50, 5000, 6.55, "Android", "Snapdragon 695", "5G"),
	dev("Nothing", "Phone (2)", types.TierMediumHigh, 8, 256, 50, 4700, 6.7, "Android", "Snapdragon 8+ Gen 1", "5G"),
}

func dev(brand, model string, tier types.PriceTier, ram, storage, camera, battery int, screen float64, os, proc, net string) types.Device {
	return types.Device{
		Brand: brand,
		Model: model,
		AttributeSet: types.AttributeSet{
			PriceTier:  tier,
			RAM:        ram,
			Storage:    storage,
			CameraMP:   camera,
			BatteryMAh: battery,
			ScreenSize: screen,
			OS:         os,
			Processor:  proc,
			Network:    net,
		},
	}
}

// Seed populates an empty catalog with the reference devices. A catalog
// that already has devices is left untouched.
func (s *Store) Seed(ctx context.Context) (int, error) {
	n, err := s.DeviceCount(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	if err := s.AddDevices(ctx, SeedDevices); err != nil {
		return 0, fmt.Errorf("seeding catalog: %w", err)
	}
	return len(SeedDevices), nil
}
