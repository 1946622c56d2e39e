package hll

import "testing"

func TestOnesTo(t *testing.T) {
	testCases := []struct {
		startPos, endPos uint
		expectResult     uint64
	}{
		{0, 0, 1},
		{63, 63, 1 << 63},
		{2, 4, 4 + 8 + 16},
		{56, 63, 0xFF00000000000000},
		{0, 63, all1s},
	}

	for i, testCase := range testCases {
		actualResult := onesFromTo(testCase.startPos, testCase.endPos)
		if testCase.expectResult != actualResult {
			t.Errorf("Case %d actual result was %v", i, actualResult)
		}
	}
}

func TestLowOnes(t *testing.T) {
	testCases := []struct {
		width        uint
		expectResult uint64
	}{
		{0, 0},
		{1, 1},
		{4, 0xF},
		{6, 0x3F},
		{63, all1s >> 1},
		{64, all1s},
	}

	for i, testCase := range testCases {
		actualResult := lowOnes(testCase.width)
		if testCase.expectResult != actualResult {
			t.Errorf("Case %d actual result was %x", i, actualResult)
		}
	}
}

func TestExtractShift(t *testing.T) {
	testCases := []struct {
		input            uint64
		startPos, endPos uint
		expectResult     uint64
	}{
		{0, 0, 63, 0},
		{0xAABBCCDD00, 8, 47, 0xAABBCCDD},
		{0xFF00000000000000, 56, 63, 0xFF},
		{0xFF, 0, 7, 0xFF},
		{0x21, 4, 7, 2},
	}

	for i, testCase := range testCases {
		actualResult := extractShift(testCase.input, testCase.startPos, testCase.endPos)
		if testCase.expectResult != actualResult {
			t.Errorf("Case %d actual result was %v", i, actualResult)
		}
	}
}

func TestByteCount(t *testing.T) {
	testCases := []struct {
		bits, expectResult uint64
	}{
		{0, 0},
		{1, 1},
		{8, 1},
		{9, 2},
		{20, 3},
		{1 << 20, 1 << 17},
	}

	for i, testCase := range testCases {
		actualResult := byteCount(testCase.bits)
		if testCase.expectResult != actualResult {
			t.Errorf("Case %d actual result was %v", i, actualResult)
		}
	}
}
