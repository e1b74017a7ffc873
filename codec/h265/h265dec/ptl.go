/*
DESCRIPTION
  ptl.go provides parsing of the profile_tier_level syntax structure shared
  by the H.265 parameter sets.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package h265dec

import "github.com/ausocean/nalu/codec/bits"

// ProfileTierLevel describes a profile_tier_level structure, as defined in
// section 7.3.3 of ITU-T H.265.
type ProfileTierLevel struct {
	GeneralProfileSpace              uint8      `json:"general_profile_space"`
	GeneralTierFlag                  bool       `json:"general_tier_flag"`
	GeneralProfileIDC                uint8      `json:"general_profile_idc"`
	GeneralProfileCompatibilityFlags [32]bool   `json:"general_profile_compatibility_flags"`
	GeneralConstraintIndicatorFlags  [48]bool   `json:"general_constraint_indicator_flags"`
	GeneralLevelIDC                  uint8      `json:"general_level_idc"`
	SubLayers                        []SubLayer `json:"sub_layers,omitempty"`
}

// SubLayer holds the profile and level of one temporal sub-layer. The
// profile and level fields are nil unless their presence flag is set.
type SubLayer struct {
	ProfilePresent bool   `json:"sub_layer_profile_present_flag"`
	LevelPresent   bool   `json:"sub_layer_level_present_flag"`
	ProfileSpace   *uint8 `json:"sub_layer_profile_space,omitempty"`
	TierFlag       *bool  `json:"sub_layer_tier_flag,omitempty"`
	ProfileIDC     *uint8 `json:"sub_layer_profile_idc,omitempty"`
	LevelIDC       *uint8 `json:"sub_layer_level_idc,omitempty"`
}

// NewProfileTierLevel reads a profile_tier_level structure for a stream with
// maxNumSubLayersMinus1 + 1 temporal sub-layers. The presence flags of all
// sub-layers precede any of their profile and level fields.
func NewProfileTierLevel(r *bits.FieldReader, maxNumSubLayersMinus1 int) *ProfileTierLevel {
	ptl := &ProfileTierLevel{
		GeneralProfileSpace: uint8(r.ReadBits(2)),
		GeneralTierFlag:     r.ReadFlag(),
		GeneralProfileIDC:   uint8(r.ReadBits(5)),
	}
	for j := range ptl.GeneralProfileCompatibilityFlags {
		ptl.GeneralProfileCompatibilityFlags[j] = r.ReadFlag()
	}
	for j := range ptl.GeneralConstraintIndicatorFlags {
		ptl.GeneralConstraintIndicatorFlags[j] = r.ReadFlag()
	}
	ptl.GeneralLevelIDC = uint8(r.ReadBits(8))

	if maxNumSubLayersMinus1 <= 0 {
		return ptl
	}

	ptl.SubLayers = make([]SubLayer, maxNumSubLayersMinus1)
	for i := range ptl.SubLayers {
		ptl.SubLayers[i].ProfilePresent = r.ReadFlag()
		ptl.SubLayers[i].LevelPresent = r.ReadFlag()
	}
	for i := range ptl.SubLayers {
		sl := &ptl.SubLayers[i]
		if sl.ProfilePresent {
			space, tier, idc := uint8(r.ReadBits(2)), r.ReadFlag(), uint8(r.ReadBits(5))
			sl.ProfileSpace = &space
			sl.TierFlag = &tier
			sl.ProfileIDC = &idc
		}
		if sl.LevelPresent {
			level := uint8(r.ReadBits(8))
			sl.LevelIDC = &level
		}
	}
	return ptl
}

// GeneralProfile holds the general profile, tier and level as they are read
// at the start of a sequence parameter set.
type GeneralProfile struct {
	ProfileSpace uint8 `json:"general_profile_space"`
	TierFlag     bool  `json:"general_tier_flag"`
	ProfileIDC   uint8 `json:"general_profile_idc"`
	LevelIDC     uint8 `json:"general_level_idc"`
}

func newGeneralProfile(r *bits.FieldReader) GeneralProfile {
	return GeneralProfile{
		ProfileSpace: uint8(r.ReadBits(2)),
		TierFlag:     r.ReadFlag(),
		ProfileIDC:   uint8(r.ReadBits(5)),
		LevelIDC:     uint8(r.ReadBits(8)),
	}
}
