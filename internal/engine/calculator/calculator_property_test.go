//go:build property

package calculator_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/SwiggitySwerve/megamek-web-sub007/internal/engine/builder"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/engine/calculator"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/entities/mech"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/registry"
)

func TestBattleValueProperties(t *testing.T) {
	catalog, err := registry.Default()
	if err != nil {
		t.Fatal(err)
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	base := func(armor, lasers int) mech.Draft {
		d, _ := builder.CreateEmpty(50, mech.TechBaseInnerSphere)
		d = builder.SetArmor(d, mech.ArmorAllocation{mech.LocationCenterTorso: {Front: armor}})
		for i := 0; i < lasers; i++ {
			d = builder.AddEquipment(d, "small-laser", mech.LocationRightTorso)
		}
		return d
	}

	properties.Property("non-decreasing in armor", prop.ForAll(
		func(armor, extra, lasers int) bool {
			low := calculator.CalculateBattleValue(base(armor, lasers), catalog)
			high := calculator.CalculateBattleValue(base(armor+extra, lasers), catalog)
			return high.Total >= low.Total
		},
		gen.IntRange(0, 200),
		gen.IntRange(0, 100),
		gen.IntRange(0, 12),
	))

	properties.Property("non-decreasing in weapon value while heat is dissipated", prop.ForAll(
		func(armor, lasers int) bool {
			low := calculator.CalculateBattleValue(base(armor, lasers), catalog)
			high := calculator.CalculateBattleValue(base(armor, lasers+1), catalog)
			return high.Offensive >= low.Offensive && high.Total >= low.Total
		},
		gen.IntRange(0, 200),
		gen.IntRange(0, 8),
	))

	properties.Property("heat adjustment is non-increasing and saturates", prop.ForAll(
		func(net, step int) bool {
			a := calculator.HeatAdjustment(net)
			b := calculator.HeatAdjustment(net + step)
			return b <= a && b >= 0.5 && a <= 1
		},
		gen.IntRange(-20, 20),
		gen.IntRange(0, 20),
	))

	properties.TestingRun(t)
}
