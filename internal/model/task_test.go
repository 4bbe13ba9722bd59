package model

import "testing"

func TestDownloadTask_GetETAString(t *testing.T) {
	tests := []struct {
		etaSec   int
		expected string
	}{
		{-1, "—"},
		{0, "—"},
		{30, "00:30"},
		{90, "01:30"},
		{3600, "01:00:00"},
		{3661, "01:01:01"},
		{7323, "02:02:03"},
	}

	for _, test := range tests {
		task := &DownloadTask{ETASec: test.etaSec}
		result := task.GetETAString()
		if result != test.expected {
			t.Errorf("GetETAString() with ETASec=%d = %s, expected %s", test.etaSec, result, test.expected)
		}
	}
}

func TestDownloadTask_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		title    string
		output   string
		url      string
		expected string
	}{
		{"Video Title", "", "https://youtube.com/watch?v=123", "Video Title"},
		{"", "", "https://youtube.com/watch?v=123", "https://youtube.com/watch?v=123"},
		{"", "/home/u/Downloads/Clip Name.mp4", "https://youtube.com/watch?v=1", "Clip Name"},
		{"", `C:\Users\u\Downloads\Song.m4a`, "https://youtube.com/watch?v=2", "Song"},
		{"https://youtube.com/watch?v=3", "", "https://youtube.com/watch?v=3", "https://youtube.com/watch?v=3"},
	}

	for _, test := range tests {
		task := &DownloadTask{Title: test.title, OutputPath: test.output, URL: test.url}
		result := task.GetDisplayTitle()
		if result != test.expected {
			t.Errorf("GetDisplayTitle() with title='%s', output='%s' = '%s', expected '%s'",
				test.title, test.output, result, test.expected)
		}
	}
}

func TestDownloadTask_ApplyProgress(t *testing.T) {
	eta := 42
	task := &DownloadTask{Status: TaskStatusStarting, ETASec: -1}

	task.ApplyProgress(Downloading(0.256, 256, 1000, nil, &eta))
	if task.Status != TaskStatusDownloading {
		t.Errorf("Expected status Downloading, got %s", task.Status)
	}
	if task.Percent != 25 {
		t.Errorf("Expected percent 25, got %d", task.Percent)
	}
	if task.ETASec != 42 {
		t.Errorf("Expected ETA 42, got %d", task.ETASec)
	}

	task.ApplyProgress(Finished("a.mp4"))
	if task.Percent != 25 {
		t.Errorf("Terminal events must not change counters, got percent %d", task.Percent)
	}
}

func TestDownloadTask_Snapshot(t *testing.T) {
	task := &DownloadTask{ID: "task-1", Percent: 10}
	snap := task.Snapshot()
	task.Percent = 90

	if snap.Percent != 10 {
		t.Errorf("Snapshot should not follow later writes, got %d", snap.Percent)
	}
}
