package model

import (
	"reflect"
	"testing"
)

func TestStreamDescriptor_Tracks(t *testing.T) {
	tests := []struct {
		name  string
		d     StreamDescriptor
		video bool
		audio bool
	}{
		{"muxed", StreamDescriptor{VideoCodec: "avc1", AudioCodec: "mp4a"}, true, true},
		{"video only", StreamDescriptor{VideoCodec: "vp9", AudioCodec: CodecNone}, true, false},
		{"audio only", StreamDescriptor{VideoCodec: CodecNone, AudioCodec: "opus"}, false, true},
		{"unknown codecs", StreamDescriptor{}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.d.HasVideo() != tt.video {
				t.Errorf("HasVideo() = %v, expected %v", tt.d.HasVideo(), tt.video)
			}
			if tt.d.HasAudio() != tt.audio {
				t.Errorf("HasAudio() = %v, expected %v", tt.d.HasAudio(), tt.audio)
			}
		})
	}
}

func TestQualityMap_AddAndQuery(t *testing.T) {
	qm := NewQualityMap()
	if !qm.Empty() {
		t.Fatal("New map should be empty")
	}

	qm.Add(CategoryVideoOnly, 1080, "webm")
	qm.Add(CategoryVideoOnly, 1080, "mp4")
	qm.Add(CategoryVideoOnly, 1080, "mp4")
	qm.Add(CategoryVideoOnly, 360, "mp4")

	if qm.Empty() {
		t.Error("Map should not be empty after Add")
	}
	if !qm.Has(CategoryVideoOnly, 1080) {
		t.Error("Expected video_only/1080 to exist")
	}
	if qm.Has(CategoryAudioOnly, 1080) {
		t.Error("audio_only/1080 should not exist")
	}
	if got := qm.Extensions(CategoryVideoOnly, 1080).List(); !reflect.DeepEqual(got, []string{"mp4", "webm"}) {
		t.Errorf("Extensions = %v, expected [mp4 webm]", got)
	}
	if got := qm.Qualities(CategoryVideoOnly); !reflect.DeepEqual(got, []int{360, 1080}) {
		t.Errorf("Qualities = %v, expected [360 1080]", got)
	}
	if qm.HasCategory(CategoryCombined) {
		t.Error("combined should be empty")
	}
}
