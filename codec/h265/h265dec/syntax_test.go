/*
DESCRIPTION
  syntax_test.go provides testing for the parameter set parsing found in
  ptl.go, vps.go, sps.go, pps.go and parse.go.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package h265dec

import (
	"strings"
	"testing"

	"github.com/ausocean/nalu/codec/bits"
	"github.com/ausocean/nalu/codec/sei"
	"github.com/google/go-cmp/cmp"
)

func u8(v uint8) *uint8    { return &v }
func u32(v uint32) *uint32 { return &v }
func u64(v uint64) *uint64 { return &v }
func flag(v bool) *bool    { return &v }

// zeros returns a bit string of n zero bits.
func zeros(n int) string { return strings.Repeat("0", n) }

// mustBinToSlice converts the bit string s to bytes, failing the test on
// error.
func mustBinToSlice(t *testing.T, s string) []byte {
	t.Helper()
	b, err := bits.BinToSlice(s)
	if err != nil {
		t.Fatalf("unexpected BinToSlice error: %v", err)
	}
	return b
}

// vpsBits is a video parameter set with timing information.
var vpsBits = "0000" + // u(4) vps_video_parameter_set_id = 0
	"1" + // u(1) vps_base_layer_internal_flag = 1
	"1" + // u(1) vps_base_layer_available_flag = 1
	"000000" + // u(6) vps_max_layers_minus1 = 0
	"000" + // u(3) vps_max_sub_layers_minus1 = 0
	"1" + // u(1) vps_temporal_id_nesting_flag = 1
	"1111 1111 1111 1111" + // u(16) vps_reserved_0xffff_16bits
	"00" + // u(2) general_profile_space = 0
	"0" + // u(1) general_tier_flag = 0
	"00001" + // u(5) general_profile_idc = 1
	"0110" + zeros(28) + // u(1)x32 general_profile_compatibility_flag, 1 and 2 set
	"1001" + zeros(44) + // u(1)x48 general_constraint_indicator_flags, 0 and 3 set
	"0101 1101" + // u(8) general_level_idc = 93
	"1" + // u(1) vps_sub_layer_ordering_info_present_flag = 1
	"011" + // ue(v) vps_max_dec_pic_buffering_minus1[0] = 2
	"1" + // ue(v) vps_max_num_reorder_pics[0] = 0
	"1" + // ue(v) vps_max_latency_increase_plus1[0] = 0
	"000000" + // u(6) vps_max_layer_id = 0
	"1" + // ue(v) vps_num_layer_sets_minus1 = 0
	"1" + // u(1) vps_timing_info_present_flag = 1
	zeros(31) + "1" + // u(32) vps_num_units_in_tick = 1
	zeros(27) + "11001" + // u(32) vps_time_scale = 25
	"1" + // u(1) vps_poc_proportional_to_timing_flag = 1
	"1" + // ue(v) vps_num_ticks_poc_diff_one_minus1 = 0
	"1" // rbsp_stop_one_bit

func TestNewVPS(t *testing.T) {
	got, err := NewVPS(mustBinToSlice(t, vpsBits))
	if err != nil {
		t.Fatalf("did not expect error: %v", err)
	}

	ptl := &ProfileTierLevel{GeneralProfileIDC: 1, GeneralLevelIDC: 93}
	ptl.GeneralProfileCompatibilityFlags[1] = true
	ptl.GeneralProfileCompatibilityFlags[2] = true
	ptl.GeneralConstraintIndicatorFlags[0] = true
	ptl.GeneralConstraintIndicatorFlags[3] = true

	want := &VPS{
		BaseLayerInternal:           true,
		BaseLayerAvailable:          true,
		TemporalIDNesting:           true,
		Reserved:                    0xffff,
		ProfileTierLevel:            ptl,
		SubLayerOrderingInfoPresent: true,
		MaxDecPicBufferingMinus1:    []uint64{2},
		MaxNumReorderPics:           []uint64{0},
		MaxLatencyIncreasePlus1:     []uint64{0},
		TimingInfoPresent:           true,
		NumUnitsInTick:              u32(1),
		TimeScale:                   u32(25),
		POCProportionalToTiming:     flag(true),
		NumTicksPOCDiffOneMinus1:    u64(0),
	}
	if !cmp.Equal(want, got) {
		t.Errorf("did not get expected result\n%s", cmp.Diff(want, got))
	}
}

func TestNewVPSTruncated(t *testing.T) {
	in := mustBinToSlice(t, vpsBits)
	if _, err := NewVPS(in[:20]); err == nil {
		t.Error("expected error for truncated video parameter set")
	}
}

func TestNewProfileTierLevelSubLayers(t *testing.T) {
	in := zeros(96) + // general profile, tier and level
		"10" + // sub_layer_profile_present_flag[0] = 1, sub_layer_level_present_flag[0] = 0
		"01" + // sub_layer_profile_present_flag[1] = 0, sub_layer_level_present_flag[1] = 1
		"01" + // u(2) sub_layer_profile_space[0] = 1
		"1" + // u(1) sub_layer_tier_flag[0] = 1
		"00010" + // u(5) sub_layer_profile_idc[0] = 2
		"0001 1110" // u(8) sub_layer_level_idc[1] = 30

	r := bits.NewFieldReader(bits.NewBitReader(mustBinToSlice(t, in)))
	got := NewProfileTierLevel(r, 2)
	if r.Err() != nil {
		t.Fatalf("did not expect error: %v", r.Err())
	}

	want := []SubLayer{
		{ProfilePresent: true, ProfileSpace: u8(1), TierFlag: flag(true), ProfileIDC: u8(2)},
		{LevelPresent: true, LevelIDC: u8(30)},
	}
	if !cmp.Equal(want, got.SubLayers) {
		t.Errorf("did not get expected sub-layers\n%s", cmp.Diff(want, got.SubLayers))
	}
}

func TestNewSPS(t *testing.T) {
	in := "0000" + // u(4) sps_video_parameter_set_id = 0
		"000" + // u(3) sps_max_sub_layers_minus1 = 0
		"1" + // u(1) sps_temporal_id_nesting_flag = 1
		"00" + // u(2) general_profile_space = 0
		"0" + // u(1) general_tier_flag = 0
		"00001" + // u(5) general_profile_idc = 1
		"0101 1101" + // u(8) general_level_idc = 93
		"1" + // ue(v) sps_seq_parameter_set_id = 0
		"010" + // ue(v) chroma_format_idc = 1
		zeros(10) + "11110000001" + // ue(v) pic_width_in_luma_samples = 1920
		zeros(10) + "10000111001" + // ue(v) pic_height_in_luma_samples = 1080
		"1" + // u(1) conformance_window_flag = 1
		"1" + // ue(v) conf_win_left_offset = 0
		"1" + // ue(v) conf_win_right_offset = 0
		"1" + // ue(v) conf_win_top_offset = 0
		"00101" + // ue(v) conf_win_bottom_offset = 4
		"1" // rbsp_stop_one_bit

	got, err := NewSPS(mustBinToSlice(t, in))
	if err != nil {
		t.Fatalf("did not expect error: %v", err)
	}
	want := &SPS{
		TemporalIDNesting:   true,
		ProfileTierLevel:    GeneralProfile{ProfileIDC: 1, LevelIDC: 93},
		ChromaFormatIDC:     1,
		PicWidth:            1920,
		PicHeight:           1080,
		ConformanceWindow:   true,
		ConfWinLeftOffset:   u64(0),
		ConfWinRightOffset:  u64(0),
		ConfWinTopOffset:    u64(0),
		ConfWinBottomOffset: u64(4),
	}
	if !cmp.Equal(want, got) {
		t.Errorf("did not get expected result\n%s", cmp.Diff(want, got))
	}
}

func TestNewPPS(t *testing.T) {
	tests := []struct {
		in   string
		want *PPS
	}{
		{
			in: "1" + // ue(v) pps_pic_parameter_set_id = 0
				"1" + // ue(v) pps_seq_parameter_set_id = 0
				"0" + // u(1) dependent_slice_segments_enabled_flag = 0
				"0" + // u(1) output_flag_present_flag = 0
				"000" + // u(3) num_extra_slice_header_bits = 0
				"1" + // u(1) sign_data_hiding_enabled_flag = 1
				"1" + // u(1) cabac_init_present_flag = 1
				"1" + // ue(v) num_ref_idx_l0_default_active_minus1 = 0
				"1" + // ue(v) num_ref_idx_l1_default_active_minus1 = 0
				"00101" + // se(v) init_qp_minus26 = -2
				"0" + // u(1) constrained_intra_pred_flag = 0
				"0" + // u(1) transform_skip_enabled_flag = 0
				"1" + // u(1) cu_qp_delta_enabled_flag = 1
				"010" + // ue(v) diff_cu_qp_delta_depth = 1
				"1", // rbsp_stop_one_bit
			want: &PPS{
				SignDataHidingEnabled: true,
				CABACInitPresent:      true,
				InitQPMinus26:         -2,
				CUQPDeltaEnabled:      true,
				DiffCUQPDeltaDepth:    u64(1),
			},
		},
		{
			in: "010" + // ue(v) pps_pic_parameter_set_id = 1
				"011" + // ue(v) pps_seq_parameter_set_id = 2
				"1" + // u(1) dependent_slice_segments_enabled_flag = 1
				"1" + // u(1) output_flag_present_flag = 1
				"010" + // u(3) num_extra_slice_header_bits = 2
				"0" + // u(1) sign_data_hiding_enabled_flag = 0
				"0" + // u(1) cabac_init_present_flag = 0
				"011" + // ue(v) num_ref_idx_l0_default_active_minus1 = 2
				"010" + // ue(v) num_ref_idx_l1_default_active_minus1 = 1
				"010" + // se(v) init_qp_minus26 = 1
				"1" + // u(1) constrained_intra_pred_flag = 1
				"1" + // u(1) transform_skip_enabled_flag = 1
				"0" + // u(1) cu_qp_delta_enabled_flag = 0
				"1", // rbsp_stop_one_bit
			want: &PPS{
				PPSID:                          1,
				SPSID:                          2,
				DependentSliceSegmentsEnabled:  true,
				OutputFlagPresent:              true,
				NumExtraSliceHeaderBits:        2,
				NumRefIdxL0DefaultActiveMinus1: 2,
				NumRefIdxL1DefaultActiveMinus1: 1,
				InitQPMinus26:                  1,
				ConstrainedIntraPred:           true,
				TransformSkipEnabled:           true,
			},
		},
	}

	for i, test := range tests {
		got, err := NewPPS(mustBinToSlice(t, test.in))
		if err != nil {
			t.Fatalf("did not expect error: %v for test: %d", err, i)
		}
		if !cmp.Equal(test.want, got) {
			t.Errorf("did not get expected result for test: %d\n%s", i, cmp.Diff(test.want, got))
		}
	}
}

func TestParsePayload(t *testing.T) {
	v, err := ParsePayload(naluTypeVPS, mustBinToSlice(t, vpsBits))
	if err != nil {
		t.Fatalf("did not expect error: %v", err)
	}
	if _, ok := v.(*VPS); !ok {
		t.Errorf("expected *VPS, got: %T", v)
	}

	v, err = ParsePayload(naluTypePrefixSEI, []byte{0x05, 0x01, 0xaa, 0x80})
	if err != nil {
		t.Fatalf("did not expect error: %v", err)
	}
	msgs, ok := v.([]sei.Message)
	if !ok || len(msgs) != 1 || msgs[0].PayloadType != sei.TypeUserDataUnregistered {
		t.Errorf("unexpected SEI result: %#v", v)
	}

	v, err = ParsePayload(naluTypeTrailR, []byte{0xff})
	if v != nil || err != nil {
		t.Errorf("expected no payload for slice segment, got: %v, %v", v, err)
	}

	if _, err = ParsePayload(naluTypeSPS, nil); err == nil {
		t.Error("expected error for empty sequence parameter set")
	}
}
