/*
DESCRIPTION
  names.go provides the names of SEI payload types.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package sei

import "fmt"

// SEI payload types, see table D-1 of ITU-T H.264 and table D.1 of
// ITU-T H.265.
const (
	TypeBufferingPeriod                      = 0
	TypePictureTiming                        = 1
	TypeUserDataRegisteredITUTT35            = 4
	TypeUserDataUnregistered                 = 5
	TypeRecoveryPoint                        = 6
	TypeSceneInfo                            = 9
	TypeFullFrameSnapshot                    = 15
	TypeProgressiveRefinementSegmentStart    = 16
	TypeProgressiveRefinementSegmentEnd      = 17
	TypeFilmGrainCharacteristics             = 19
	TypePostFilterHint                       = 22
	TypeToneMappingInfo                      = 23
	TypeFramePackingArrangement              = 45
	TypeDisplayOrientation                   = 47
	TypeActiveParameterSets                  = 129
	TypeDecodingUnitInfo                     = 130
	TypeTemporalSubLayerZeroIdx              = 131
	TypeDecodedPictureHash                   = 132
	TypeScalableNesting                      = 133
	TypeRegionRefreshInfo                    = 134
	TypeNoDisplay                            = 135
	TypeTimeCode                             = 136
	TypeMasteringDisplayColourVolume         = 137
	TypeSegmentedRectFramePackingArrangement = 138
	TypeTemporalMotionConstrainedTileSets    = 139
	TypeChromaResamplingFilterHint           = 140
	TypeKneeFunctionInfo                     = 141
	TypeColourRemappingInfo                  = 142
	TypeDeinterlacedFieldIdentification      = 143
	TypeContentLightLevelInfo                = 144
	TypeDependentRAPIndication               = 145
	TypeAlternativeTransferCharacteristics   = 147
	TypeAmbientViewingEnvironment            = 148
)

var typeNames = map[int]string{
	TypeBufferingPeriod:                      "BUFFERING_PERIOD",
	TypePictureTiming:                        "PICTURE_TIMING",
	TypeUserDataRegisteredITUTT35:            "USER_DATA_REGISTERED_ITU_T_T35",
	TypeUserDataUnregistered:                 "USER_DATA_UNREGISTERED",
	TypeRecoveryPoint:                        "RECOVERY_POINT",
	TypeSceneInfo:                            "SCENE_INFO",
	TypeFullFrameSnapshot:                    "FULL_FRAME_SNAPSHOT",
	TypeProgressiveRefinementSegmentStart:    "PROGRESSIVE_REFINEMENT_SEGMENT_START",
	TypeProgressiveRefinementSegmentEnd:      "PROGRESSIVE_REFINEMENT_SEGMENT_END",
	TypeFilmGrainCharacteristics:             "FILM_GRAIN_CHARACTERISTICS",
	TypePostFilterHint:                       "POST_FILTER_HINT",
	TypeToneMappingInfo:                      "TONE_MAPPING_INFO",
	TypeFramePackingArrangement:              "FRAME_PACKING_ARRANGEMENT",
	TypeDisplayOrientation:                   "DISPLAY_ORIENTATION",
	TypeActiveParameterSets:                  "ACTIVE_PARAMETER_SETS",
	TypeDecodingUnitInfo:                     "DECODING_UNIT_INFO",
	TypeTemporalSubLayerZeroIdx:              "TEMPORAL_SUB_LAYER_ZERO_IDX",
	TypeDecodedPictureHash:                   "DECODED_PICTURE_HASH",
	TypeScalableNesting:                      "SCALABLE_NESTING",
	TypeRegionRefreshInfo:                    "REGION_REFRESH_INFO",
	TypeNoDisplay:                            "NO_DISPLAY",
	TypeTimeCode:                             "TIME_CODE",
	TypeMasteringDisplayColourVolume:         "MASTERING_DISPLAY_COLOUR_VOLUME",
	TypeSegmentedRectFramePackingArrangement: "SEGMENTED_RECT_FRAME_PACKING_ARRANGEMENT",
	TypeTemporalMotionConstrainedTileSets:    "TEMPORAL_MOTION_CONSTRAINED_TILE_SETS",
	TypeChromaResamplingFilterHint:           "CHROMA_RESAMPLING_FILTER_HINT",
	TypeKneeFunctionInfo:                     "KNEE_FUNCTION_INFO",
	TypeColourRemappingInfo:                  "COLOUR_REMAPPING_INFO",
	TypeDeinterlacedFieldIdentification:      "DEINTERLACED_FIELD_IDENTIFICATION",
	TypeContentLightLevelInfo:                "CONTENT_LIGHT_LEVEL_INFO",
	TypeDependentRAPIndication:               "DEPENDENT_RAP_INDICATION",
	TypeAlternativeTransferCharacteristics:   "ALTERNATIVE_TRANSFER_CHARACTERISTICS",
	TypeAmbientViewingEnvironment:            "AMBIENT_VIEWING_ENVIRONMENT",
}

// TypeName returns the name of SEI payload type typ.
func TypeName(typ int) string {
	if n, ok := typeNames[typ]; ok {
		return n
	}
	return fmt.Sprintf("Unknown (%d)", typ)
}
