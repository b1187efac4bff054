package compiler

import "github.com/sceneforge/gltf2tres/scene"

// ExtractMaterial picks the emitted material tag by the fixed priority
// ladder physical > standard > lambert > basic and fills the property bag
// with only the attributes that differ from that material's engine default.
// Multi-material assignments were already collapsed to the first entry by
// the loader.
func ExtractMaterial(m *scene.Material, precision int) MaterialDescriptor {
	if m == nil {
		return MaterialDescriptor{Tag: "TresMeshBasicMaterial"}
	}

	var tag string
	declaresPBR := false
	declaresClearcoat := false
	declaresEmissive := true

	switch m.Kind {
	case scene.MATERIAL_KIND_PHYSICAL:
		tag = "TresMeshPhysicalMaterial"
		declaresPBR = true
		declaresClearcoat = true
	case scene.MATERIAL_KIND_STANDARD:
		tag = "TresMeshStandardMaterial"
		declaresPBR = true
	case scene.MATERIAL_KIND_LAMBERT:
		tag = "TresMeshLambertMaterial"
	default:
		tag = "TresMeshBasicMaterial"
		declaresEmissive = false
	}

	props := make([]Prop, 0, 8)

	if !m.Color.IsWhite() {
		props = append(props, Prop{Key: "color", Value: "#" + m.Color.Hex()})
	}
	if declaresPBR {
		if !isDefault("material", "roughness", m.Roughness, precision) {
			props = append(props, Prop{Key: "roughness", Value: FormatFloat(m.Roughness, precision), Expr: true})
		}
		if !isDefault("material", "metalness", m.Metalness, precision) {
			props = append(props, Prop{Key: "metalness", Value: FormatFloat(m.Metalness, precision), Expr: true})
		}
	}
	if declaresClearcoat && !isDefault("material", "clearcoat", m.Clearcoat, precision) {
		props = append(props, Prop{Key: "clearcoat", Value: FormatFloat(m.Clearcoat, precision), Expr: true})
	}
	if declaresEmissive && !m.Emissive.IsBlack() {
		props = append(props, Prop{Key: "emissive", Value: "#" + m.Emissive.Hex()})
	}
	if m.Transparent {
		props = append(props, Prop{Key: "transparent"})
	}
	if m.Opacity < 1 && !isDefault("material", "opacity", m.Opacity, precision) {
		props = append(props, Prop{Key: "opacity", Value: FormatFloat(m.Opacity, precision), Expr: true})
	}
	if m.DoubleSided {
		// 2 = DoubleSide; the default front-side value is never written
		props = append(props, Prop{Key: "side", Value: "2", Expr: true})
	}

	return MaterialDescriptor{Tag: tag, Props: props}
}
