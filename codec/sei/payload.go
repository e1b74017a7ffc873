/*
DESCRIPTION
  payload.go provides parsing of the SEI payloads that have a fixed layout,
  as defined in annex D of ITU-T H.264 and ITU-T H.265.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package sei

import (
	"encoding/json"

	"github.com/ausocean/nalu/codec/bits"
	"github.com/ausocean/nalu/codec/codecutil"
)

// Payload holds a parsed SEI payload. At most one field is set. Payload
// types without a parser, and payloads that could not be parsed, are kept as
// Raw bytes.
type Payload struct {
	BufferingPeriod              *BufferingPeriod
	PictureTiming                *PictureTiming
	RecoveryPoint                *RecoveryPoint
	FilmGrainCharacteristics     *FilmGrainCharacteristics
	FramePackingArrangement      *FramePackingArrangement
	DisplayOrientation           *DisplayOrientation
	MasteringDisplayColourVolume *MasteringDisplayColourVolume
	ContentLightLevelInfo        *ContentLightLevelInfo
	Raw                          []byte
}

// Value returns the set payload structure, or a RawPayload.
func (p Payload) Value() interface{} {
	switch {
	case p.BufferingPeriod != nil:
		return p.BufferingPeriod
	case p.PictureTiming != nil:
		return p.PictureTiming
	case p.RecoveryPoint != nil:
		return p.RecoveryPoint
	case p.FilmGrainCharacteristics != nil:
		return p.FilmGrainCharacteristics
	case p.FramePackingArrangement != nil:
		return p.FramePackingArrangement
	case p.DisplayOrientation != nil:
		return p.DisplayOrientation
	case p.MasteringDisplayColourVolume != nil:
		return p.MasteringDisplayColourVolume
	case p.ContentLightLevelInfo != nil:
		return p.ContentLightLevelInfo
	}
	return RawPayload{Raw: codecutil.HexString(p.Raw)}
}

// MarshalJSON encodes only the set payload structure.
func (p Payload) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Value())
}

// RawPayload is the encoded form of an unparsed payload.
type RawPayload struct {
	Raw string `json:"raw"`
}

// BufferingPeriod describes the leading fields of a buffering period SEI
// message.
type BufferingPeriod struct {
	SPSID uint64 `json:"seq_parameter_set_id"`

	// H.265 only.
	IRAPCPBParamsPresent *bool   `json:"irap_cpb_params_present_flag,omitempty"`
	CPBDelayOffset       *uint64 `json:"cpb_delay_offset,omitempty"`
	DPBDelayOffset       *uint64 `json:"dpb_delay_offset,omitempty"`
}

func newBufferingPeriod(r *bits.FieldReader, hevc bool) *BufferingPeriod {
	bp := &BufferingPeriod{SPSID: r.ReadUe()}
	if !hevc {
		return bp
	}
	present := r.ReadFlag()
	bp.IRAPCPBParamsPresent = &present
	if present {
		cpb, dpb := r.ReadBits(8), r.ReadBits(8)
		bp.CPBDelayOffset = &cpb
		bp.DPBDelayOffset = &dpb
	}
	return bp
}

// PictureTiming describes the leading fields of a picture timing SEI message.
// The H.264 layout assumes pic_struct_present_flag is 0 and reads the first
// clock timestamp.
type PictureTiming struct {
	// H.265 fields.
	PicStruct      *uint64 `json:"pic_struct,omitempty"`
	SourceScanType *uint64 `json:"source_scan_type,omitempty"`
	DuplicateFlag  *bool   `json:"duplicate_flag,omitempty"`

	// H.264 fields.
	ClockTimestampFlag *bool   `json:"clock_timestamp_flag,omitempty"`
	CtType             *uint64 `json:"ct_type,omitempty"`
	NuitFieldBasedFlag *bool   `json:"nuit_field_based_flag,omitempty"`
	CountingType       *uint64 `json:"counting_type,omitempty"`
	FullTimestampFlag  *bool   `json:"full_timestamp_flag,omitempty"`
	DiscontinuityFlag  *bool   `json:"discontinuity_flag,omitempty"`
	CntDroppedFlag     *bool   `json:"cnt_dropped_flag,omitempty"`
	NFrames            *uint64 `json:"n_frames,omitempty"`
}

func newPictureTiming(r *bits.FieldReader, hevc bool) *PictureTiming {
	pt := &PictureTiming{}
	if hevc {
		picStruct, scan, dup := r.ReadBits(4), r.ReadBits(2), r.ReadFlag()
		pt.PicStruct = &picStruct
		pt.SourceScanType = &scan
		pt.DuplicateFlag = &dup
		return pt
	}

	clock := r.ReadFlag()
	pt.ClockTimestampFlag = &clock
	if !clock {
		return pt
	}
	ctType := r.ReadBits(2)
	nuit := r.ReadFlag()
	counting := r.ReadBits(5)
	full := r.ReadFlag()
	discontinuity := r.ReadFlag()
	dropped := r.ReadFlag()
	nFrames := r.ReadBits(8)
	pt.CtType = &ctType
	pt.NuitFieldBasedFlag = &nuit
	pt.CountingType = &counting
	pt.FullTimestampFlag = &full
	pt.DiscontinuityFlag = &discontinuity
	pt.CntDroppedFlag = &dropped
	pt.NFrames = &nFrames
	return pt
}

// RecoveryPoint describes a recovery point SEI message.
type RecoveryPoint struct {
	RecoveryFrameCnt int64 `json:"recovery_cnt"`
	ExactMatch       bool  `json:"exact_match_flag"`
	BrokenLink       bool  `json:"broken_link_flag"`
}

func newRecoveryPoint(r *bits.FieldReader) *RecoveryPoint {
	return &RecoveryPoint{
		RecoveryFrameCnt: r.ReadSe(),
		ExactMatch:       r.ReadFlag(),
		BrokenLink:       r.ReadFlag(),
	}
}

// FilmGrainCharacteristics describes the leading fields of a film grain
// characteristics SEI message.
type FilmGrainCharacteristics struct {
	Cancel                           bool  `json:"film_grain_characteristics_cancel_flag"`
	ModelID                          uint8 `json:"film_grain_model_id"`
	SeparateColourDescriptionPresent bool  `json:"separate_colour_description_present_flag"`
	BitDepthLumaMinus8               uint8 `json:"film_grain_bit_depth_luma_minus8"`
	BitDepthChromaMinus8             uint8 `json:"film_grain_bit_depth_chroma_minus8"`
	FullRange                        bool  `json:"film_grain_full_range_flag"`
	ColourPrimaries                  uint8 `json:"film_grain_colour_primaries"`
	TransferCharacteristics          uint8 `json:"film_grain_transfer_characteristics"`
	MatrixCoefficients               uint8 `json:"film_grain_matrix_coefficients"`
}

func newFilmGrainCharacteristics(r *bits.FieldReader) *FilmGrainCharacteristics {
	return &FilmGrainCharacteristics{
		Cancel:                           r.ReadFlag(),
		ModelID:                          uint8(r.ReadBits(2)),
		SeparateColourDescriptionPresent: r.ReadFlag(),
		BitDepthLumaMinus8:               uint8(r.ReadBits(3)),
		BitDepthChromaMinus8:             uint8(r.ReadBits(3)),
		FullRange:                        r.ReadFlag(),
		ColourPrimaries:                  uint8(r.ReadBits(8)),
		TransferCharacteristics:          uint8(r.ReadBits(8)),
		MatrixCoefficients:               uint8(r.ReadBits(8)),
	}
}

// FramePackingArrangement describes the leading fields of a frame packing
// arrangement SEI message.
type FramePackingArrangement struct {
	ID                        uint64 `json:"frame_packing_arrangement_id"`
	Cancel                    bool   `json:"frame_packing_arrangement_cancel_flag"`
	Type                      uint8  `json:"frame_packing_arrangement_type"`
	QuincunxSampling          bool   `json:"quincunx_sampling_flag"`
	ContentInterpretationType uint8  `json:"content_interpretation_type"`
	SpatialFlipping           bool   `json:"spatial_flipping_flag"`
	Frame0Flipped             bool   `json:"frame0_flipped_flag"`
	FieldViews                bool   `json:"field_views_flag"`
	CurrentFrameIsFrame0      bool   `json:"current_frame_is_frame0_flag"`
	Frame0SelfContained       bool   `json:"frame0_self_contained_flag"`
	Frame1SelfContained       bool   `json:"frame1_self_contained_flag"`
}

func newFramePackingArrangement(r *bits.FieldReader) *FramePackingArrangement {
	return &FramePackingArrangement{
		ID:                        r.ReadUe(),
		Cancel:                    r.ReadFlag(),
		Type:                      uint8(r.ReadBits(7)),
		QuincunxSampling:          r.ReadFlag(),
		ContentInterpretationType: uint8(r.ReadBits(6)),
		SpatialFlipping:           r.ReadFlag(),
		Frame0Flipped:             r.ReadFlag(),
		FieldViews:                r.ReadFlag(),
		CurrentFrameIsFrame0:      r.ReadFlag(),
		Frame0SelfContained:       r.ReadFlag(),
		Frame1SelfContained:       r.ReadFlag(),
	}
}

// DisplayOrientation describes a display orientation SEI message.
type DisplayOrientation struct {
	Cancel                bool   `json:"display_orientation_cancel_flag"`
	HorFlip               bool   `json:"hor_flip"`
	VerFlip               bool   `json:"ver_flip"`
	AnticlockwiseRotation uint16 `json:"anticlockwise_rotation"`
}

func newDisplayOrientation(r *bits.FieldReader) *DisplayOrientation {
	return &DisplayOrientation{
		Cancel:                r.ReadFlag(),
		HorFlip:               r.ReadFlag(),
		VerFlip:               r.ReadFlag(),
		AnticlockwiseRotation: uint16(r.ReadBits(16)),
	}
}

// MasteringDisplayColourVolume describes a mastering display colour volume
// SEI message. Primaries are given in the order they are coded.
type MasteringDisplayColourVolume struct {
	DisplayPrimariesX            [3]uint16 `json:"display_primaries_x"`
	DisplayPrimariesY            [3]uint16 `json:"display_primaries_y"`
	WhitePointX                  uint16    `json:"white_point_x"`
	WhitePointY                  uint16    `json:"white_point_y"`
	MaxDisplayMasteringLuminance uint32    `json:"max_display_mastering_luminance"`
	MinDisplayMasteringLuminance uint32    `json:"min_display_mastering_luminance"`
}

func newMasteringDisplayColourVolume(r *bits.FieldReader) *MasteringDisplayColourVolume {
	m := &MasteringDisplayColourVolume{}
	for c := 0; c < 3; c++ {
		m.DisplayPrimariesX[c] = uint16(r.ReadBits(16))
		m.DisplayPrimariesY[c] = uint16(r.ReadBits(16))
	}
	m.WhitePointX = uint16(r.ReadBits(16))
	m.WhitePointY = uint16(r.ReadBits(16))
	m.MaxDisplayMasteringLuminance = uint32(r.ReadBits(32))
	m.MinDisplayMasteringLuminance = uint32(r.ReadBits(32))
	return m
}

// ContentLightLevelInfo describes a content light level information SEI
// message.
type ContentLightLevelInfo struct {
	MaxContentLightLevel    uint16 `json:"max_content_light_level"`
	MaxPicAverageLightLevel uint16 `json:"max_pic_average_light_level"`
}

func newContentLightLevelInfo(r *bits.FieldReader) *ContentLightLevelInfo {
	return &ContentLightLevelInfo{
		MaxContentLightLevel:    uint16(r.ReadBits(16)),
		MaxPicAverageLightLevel: uint16(r.ReadBits(16)),
	}
}
