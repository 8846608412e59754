package render3d_test

import (
	"maps"
	"slices"
	"testing"

	"seehuhn.de/go/render3d"
	"seehuhn.de/go/render3d/testcases"
)

// pixelCheck is the expected colour of one pixel of a test case image.
type pixelCheck struct {
	camera int // index into the scene's cameras
	x, y   int
	want   render3d.Vec4
}

// casePixels lists sample pixels for every test case, keyed by category
// and name. Pixels away from triangle edges are chosen, so that rounding
// differences cannot change the result. Background pixels are included
// to catch misplaced geometry.
var casePixels = map[string][]pixelCheck{
	"basic_solid_triangle": {
		{0, 69, 53, render3d.RGB(141.667, 97.879, 15.455)},
		{0, 85, 58, render3d.RGB(33.485, 180.303, 41.212)},
		{0, 55, 65, render3d.RGB(151.97, 25.758, 77.273)},
		{0, 74, 72, render3d.RGB(18.03, 123.636, 113.333)},
		{0, 52, 84, render3d.RGB(69.545, 10.303, 175.152)},
		{0, 54, 14, render3d.RGB(0, 0, 0)},
		{0, 62, 43, render3d.RGB(0, 0, 0)},
		{0, 9, 84, render3d.RGB(0, 0, 0)},
	},
	"basic_wireframe_triangle": {
		{0, 60, 50, render3d.RGB(202.959, 52.041, 0)},
		{0, 50, 70, render3d.RGB(150.918, 0, 104.082)},
		{0, 17, 16, render3d.RGB(0, 0, 0)},
		{0, 53, 48, render3d.RGB(0, 0, 0)},
		{0, 17, 83, render3d.RGB(0, 0, 0)},
	},
	"basic_background_only": {
		{0, 0, 4, render3d.RGB(128, 128, 128)},
		{0, 0, 12, render3d.RGB(128, 128, 128)},
		{0, 0, 20, render3d.RGB(128, 128, 128)},
	},
	"basic_quad": {
		{0, 21, 20, render3d.RGB(216.548, 8.095, 30.357)},
		{0, 27, 26, render3d.RGB(167.976, 8.095, 78.929)},
		{0, 33, 32, render3d.RGB(119.405, 8.095, 127.5)},
		{0, 39, 38, render3d.RGB(70.833, 8.095, 176.071)},
		{0, 45, 44, render3d.RGB(22.262, 8.095, 224.643)},
		{0, 10, 8, render3d.RGB(0, 0, 0)},
		{0, 48, 31, render3d.RGB(0, 0, 0)},
		{0, 53, 55, render3d.RGB(0, 0, 0)},
	},
	"basic_quad_wireframe": {
		{0, 31, 16, render3d.RGB(131.613, 123.387, 0)},
		{0, 21, 21, render3d.RGB(213.871, 0, 41.129)},
		{0, 47, 31, render3d.RGB(0, 131.613, 123.387)},
		{0, 16, 42, render3d.RGB(255, 213.871, 213.871)},
		{0, 31, 47, render3d.RGB(131.613, 131.613, 255)},
		{0, 17, 10, render3d.RGB(0, 0, 0)},
		{0, 0, 32, render3d.RGB(0, 0, 0)},
		{0, 46, 53, render3d.RGB(0, 0, 0)},
	},
	"basic_overlap_order": {
		{0, 35, 11, render3d.RGB(255, 0, 0)},
		{0, 10, 22, render3d.RGB(255, 0, 0)},
		{0, 39, 32, render3d.RGB(0, 0, 255)},
		{0, 55, 42, render3d.RGB(0, 0, 255)},
		{0, 30, 53, render3d.RGB(0, 0, 255)},
		{0, 32, 5, render3d.RGB(0, 0, 0)},
		{0, 27, 31, render3d.RGB(0, 0, 0)},
		{0, 31, 58, render3d.RGB(0, 0, 0)},
	},
	"culling_front_facing": {
		{0, 33, 33, render3d.RGB(174.048, 40.476, 40.476)},
		{0, 36, 33, render3d.RGB(52.619, 161.905, 40.476)},
		{0, 35, 34, render3d.RGB(52.619, 121.429, 80.952)},
		{0, 34, 35, render3d.RGB(52.619, 80.952, 121.429)},
		{0, 34, 36, render3d.RGB(12.143, 80.952, 161.905)},
		{0, 38, 10, render3d.RGB(0, 0, 0)},
		{0, 50, 31, render3d.RGB(0, 0, 0)},
		{0, 26, 53, render3d.RGB(0, 0, 0)},
	},
	"culling_back_facing": {
		{0, 42, 10, render3d.RGB(0, 0, 0)},
		{0, 0, 32, render3d.RGB(0, 0, 0)},
		{0, 21, 53, render3d.RGB(0, 0, 0)},
	},
	"culling_back_facing_disabled": {
		{0, 34, 33, render3d.RGB(133.571, 80.952, 40.476)},
		{0, 37, 33, render3d.RGB(12.143, 202.381, 40.476)},
		{0, 35, 34, render3d.RGB(52.619, 121.429, 80.952)},
		{0, 34, 35, render3d.RGB(52.619, 80.952, 121.429)},
		{0, 34, 36, render3d.RGB(12.143, 80.952, 161.905)},
		{0, 38, 10, render3d.RGB(0, 0, 0)},
		{0, 50, 31, render3d.RGB(0, 0, 0)},
		{0, 26, 53, render3d.RGB(0, 0, 0)},
	},
	"culling_orthographic_towards_camera": {
		{0, 42, 10, render3d.RGB(0, 0, 0)},
		{0, 0, 32, render3d.RGB(0, 0, 0)},
		{0, 21, 53, render3d.RGB(0, 0, 0)},
	},
	"culling_orthographic_away_from_camera": {
		{0, 49, 34, render3d.RGB(101.19, 137.619, 16.19)},
		{0, 58, 37, render3d.RGB(4.048, 210.476, 40.476)},
		{0, 53, 41, render3d.RGB(12.143, 170, 72.857)},
		{0, 46, 46, render3d.RGB(28.333, 113.333, 113.333)},
		{0, 41, 53, render3d.RGB(12.143, 72.857, 170)},
		{0, 18, 9, render3d.RGB(0, 0, 0)},
		{0, 56, 27, render3d.RGB(0, 0, 0)},
		{0, 54, 53, render3d.RGB(0, 0, 0)},
	},
	"culling_cube": {
		{0, 41, 40, render3d.RGB(65.817, 18.862, 255)},
		{0, 42, 44, render3d.RGB(82.42, 79.873, 255)},
		{0, 38, 48, render3d.RGB(20.619, 138.092, 255)},
		{0, 52, 51, render3d.RGB(255, 215.896, 235.88)},
		{0, 42, 55, render3d.RGB(69.847, 255, 212.289)},
		{0, 30, 15, render3d.RGB(0, 0, 0)},
		{0, 94, 47, render3d.RGB(0, 0, 0)},
		{0, 65, 80, render3d.RGB(0, 0, 0)},
	},
	"culling_cube_disabled": {
		{0, 41, 40, render3d.RGB(39.769, 0, 211.886)},
		{0, 42, 44, render3d.RGB(0, 22.218, 114.254)},
		{0, 38, 48, render3d.RGB(0, 123.733, 219.653)},
		{0, 52, 51, render3d.RGB(255, 215.896, 235.88)},
		{0, 42, 55, render3d.RGB(69.847, 255, 212.289)},
		{0, 30, 15, render3d.RGB(0, 0, 0)},
		{0, 94, 47, render3d.RGB(0, 0, 0)},
		{0, 65, 80, render3d.RGB(0, 0, 0)},
	},
	"transform_translation": {
		{0, 27, 18, render3d.RGB(90.06, 150.774, 14.167)},
		{0, 12, 22, render3d.RGB(179.107, 29.345, 46.548)},
		{0, 14, 26, render3d.RGB(130.536, 45.536, 78.929)},
		{0, 13, 31, render3d.RGB(98.155, 37.44, 119.405)},
		{0, 14, 38, render3d.RGB(33.393, 45.536, 176.071)},
		{0, 24, 9, render3d.RGB(0, 0, 0)},
		{0, 29, 34, render3d.RGB(0, 0, 0)},
		{0, 40, 54, render3d.RGB(0, 0, 0)},
	},
	"transform_scaling": {
		{0, 33, 35, render3d.RGB(222.619, 16.19, 16.19)},
		{0, 40, 39, render3d.RGB(87.698, 129.524, 37.778)},
		{0, 40, 44, render3d.RGB(60.714, 129.524, 64.762)},
		{0, 39, 50, render3d.RGB(44.524, 113.333, 97.143)},
		{0, 36, 58, render3d.RGB(49.921, 64.762, 140.317)},
		{0, 47, 9, render3d.RGB(0, 0, 0)},
		{0, 13, 29, render3d.RGB(0, 0, 0)},
		{0, 60, 52, render3d.RGB(0, 0, 0)},
	},
	"transform_rotation_z": {
		{0, 19, 34, render3d.RGB(133.571, 16.19, 105.238)},
		{0, 31, 37, render3d.RGB(206.429, 40.476, 8.095)},
		{0, 30, 41, render3d.RGB(165.952, 72.857, 16.19)},
		{0, 28, 46, render3d.RGB(109.286, 113.333, 32.381)},
		{0, 30, 53, render3d.RGB(68.81, 170, 16.19)},
		{0, 18, 9, render3d.RGB(0, 0, 0)},
		{0, 56, 27, render3d.RGB(0, 0, 0)},
		{0, 54, 53, render3d.RGB(0, 0, 0)},
	},
	"transform_composite": {
		{0, 24, 28, render3d.RGB(166.275, 42.931, 45.794)},
		{0, 18, 31, render3d.RGB(97.585, 8.586, 148.829)},
		{0, 28, 32, render3d.RGB(74.688, 134.519, 45.794)},
		{0, 18, 34, render3d.RGB(28.894, 42.931, 183.174)},
		{0, 22, 35, render3d.RGB(5.997, 100.173, 148.829)},
		{0, 20, 10, render3d.RGB(0, 0, 0)},
		{0, 54, 31, render3d.RGB(0, 0, 0)},
		{0, 43, 53, render3d.RGB(0, 0, 0)},
	},
	"transform_composite_reversed": {
		{0, 32, 30, render3d.RGB(173.294, 40.853, 40.853)},
		{0, 26, 33, render3d.RGB(104.603, 6.508, 143.889)},
		{0, 36, 34, render3d.RGB(81.706, 132.44, 40.853)},
		{0, 26, 36, render3d.RGB(35.913, 40.853, 178.234)},
		{0, 30, 37, render3d.RGB(13.016, 98.095, 143.889)},
		{0, 22, 10, render3d.RGB(0, 0, 0)},
		{0, 19, 31, render3d.RGB(0, 0, 0)},
		{0, 41, 53, render3d.RGB(0, 0, 0)},
	},
	"transform_rotated_cube": {
		{0, 58, 33, render3d.RGB(159.375, 0, 255)},
		{0, 67, 39, render3d.RGB(255, 20.4, 255)},
		{0, 65, 47, render3d.RGB(255, 102, 255)},
		{0, 43, 56, render3d.RGB(75.556, 255, 255)},
		{0, 43, 61, render3d.RGB(162.273, 255, 0)},
		{0, 37, 15, render3d.RGB(0, 0, 0)},
		{0, 0, 48, render3d.RGB(0, 0, 0)},
		{0, 58, 80, render3d.RGB(0, 0, 0)},
	},
	"clip_wireframe_partial": {
		{0, 4, 8, render3d.RGB(171.796, 83.204, 0)},
		{0, 14, 8, render3d.RGB(116.378, 138.622, 0)},
		{0, 23, 8, render3d.RGB(66.502, 188.498, 0)},
		{0, 32, 8, render3d.RGB(16.625, 238.375, 0)},
		{0, 27, 16, render3d.RGB(0, 211.586, 43.414)},
		{0, 4, 5, render3d.RGB(128, 128, 128)},
		{0, 7, 16, render3d.RGB(128, 128, 128)},
		{0, 33, 26, render3d.RGB(128, 128, 128)},
	},
	"clip_solid_partial": {
		{0, 20, 10, render3d.RGB(75.855, 169.548, 9.597)},
		{0, 0, 14, render3d.RGB(162.431, 61.037, 31.532)},
		{0, 24, 17, render3d.RGB(15.766, 191.25, 47.984)},
		{0, 9, 22, render3d.RGB(69.73, 109.867, 75.403)},
		{0, 2, 28, render3d.RGB(74.805, 71.888, 108.306)},
		{0, 20, 3, render3d.RGB(128, 128, 128)},
		{0, 33, 13, render3d.RGB(128, 128, 128)},
		{0, 18, 27, render3d.RGB(128, 128, 128)},
	},
	"clip_wireframe_outside": {
		{0, 16, 5, render3d.RGB(128, 128, 128)},
		{0, 0, 16, render3d.RGB(128, 128, 128)},
		{0, 32, 26, render3d.RGB(128, 128, 128)},
	},
	"clip_solid_outside": {
		{0, 16, 5, render3d.RGB(128, 128, 128)},
		{0, 0, 16, render3d.RGB(128, 128, 128)},
		{0, 32, 26, render3d.RGB(128, 128, 128)},
	},
	"clip_solid_covering": {
		{0, 9, 3, render3d.RGB(116.386, 71.436, 67.177)},
		{0, 28, 9, render3d.RGB(90.98, 88.617, 75.403)},
		{0, 0, 16, render3d.RGB(106.702, 63.298, 85)},
		{0, 19, 22, render3d.RGB(81.295, 80.479, 93.226)},
		{0, 38, 28, render3d.RGB(55.889, 97.66, 101.452)},
	},
	"camera_two_cameras": {
		{0, 16, 20, render3d.RGB(0, 30.357, 99.101)},
		{0, 24, 26, render3d.RGB(104.988, 78.929, 0)},
		{0, 32, 32, render3d.RGB(173.906, 127.5, 0)},
		{0, 40, 38, render3d.RGB(242.824, 176.071, 0)},
		{0, 48, 44, render3d.RGB(255, 224.643, 155.899)},
		{0, 22, 7, render3d.RGB(128, 128, 128)},
		{0, 2, 31, render3d.RGB(128, 128, 128)},
		{0, 41, 56, render3d.RGB(128, 128, 128)},
		{1, 32, 27, render3d.RGB(133.322, 0, 172.698)},
		{1, 28, 30, render3d.RGB(0, 34.813, 117.604)},
		{1, 30, 32, render3d.RGB(10.57, 48.713, 0)},
		{1, 31, 34, render3d.RGB(44.47, 123.199, 0)},
		{1, 34, 36, render3d.RGB(170.881, 255, 114.606)},
		{1, 21, 10, render3d.RGB(128, 128, 128)},
		{1, 59, 31, render3d.RGB(128, 128, 128)},
		{1, 42, 53, render3d.RGB(128, 128, 128)},
	},
	"camera_wide_aspect": {
		{0, 61, 24, render3d.RGB(0, 0, 229.5)},
		{0, 73, 33, render3d.RGB(66.111, 0, 0)},
		{0, 79, 41, render3d.RGB(117.692, 117.692, 255)},
		{0, 62, 51, render3d.RGB(0, 163.929, 163.929)},
		{0, 61, 61, render3d.RGB(12.439, 255, 255)},
		{0, 95, 14, render3d.RGB(0, 0, 0)},
		{0, 28, 45, render3d.RGB(0, 0, 0)},
		{0, 64, 75, render3d.RGB(0, 0, 0)},
	},
	"camera_asymmetric_frustum": {
		{0, 29, 9, render3d.RGB(206.582, 25.823, 255)},
		{0, 19, 15, render3d.RGB(116.203, 80.051, 255)},
		{0, 7, 21, render3d.RGB(7.747, 134.278, 255)},
		{0, 23, 26, render3d.RGB(152.354, 179.468, 255)},
		{0, 13, 32, render3d.RGB(61.975, 233.696, 255)},
		{0, 40, 14, render3d.RGB(0, 0, 0)},
		{0, 72, 44, render3d.RGB(0, 0, 0)},
		{0, 24, 68, render3d.RGB(0, 0, 0)},
	},
	"camera_tilted_up_vector": {
		{0, 38, 39, render3d.RGB(174.861, 74.415, 5.724)},
		{0, 21, 45, render3d.RGB(106.171, 11.448, 137.381)},
		{0, 34, 48, render3d.RGB(71.826, 103.036, 80.139)},
		{0, 28, 51, render3d.RGB(37.48, 85.863, 131.657)},
		{0, 47, 53, render3d.RGB(14.584, 206.071, 34.345)},
		{0, 18, 9, render3d.RGB(0, 0, 0)},
		{0, 55, 27, render3d.RGB(0, 0, 0)},
		{0, 0, 54, render3d.RGB(0, 0, 0)},
	},
	"large_grid": {
		{0, 410, 72, render3d.RGB(212.888, 25.478, 42.112)},
		{0, 270, 164, render3d.RGB(135.263, 76.489, 119.737)},
		{0, 90, 256, render3d.RGB(35.458, 127.5, 219.542)},
		{0, 277, 348, render3d.RGB(139.144, 178.511, 115.856)},
		{0, 107, 440, render3d.RGB(44.884, 229.522, 210.116)},
		{0, 385, 16, render3d.RGB(0, 0, 0)},
		{0, 494, 251, render3d.RGB(0, 0, 0)},
		{0, 126, 495, render3d.RGB(0, 0, 0)},
	},
	"large_grid_wireframe": {
		{0, 112, 64, render3d.RGB(47.812, 21.433, 207.188)},
		{0, 26, 150, render3d.RGB(0, 68.873, 255)},
		{0, 105, 256, render3d.RGB(43.966, 127.5, 211.034)},
		{0, 399, 360, render3d.RGB(207.188, 185.558, 47.812)},
		{0, 188, 447, render3d.RGB(90.129, 233.567, 164.871)},
		{0, 13, 83, render3d.RGB(0, 0, 0)},
		{0, 0, 256, render3d.RGB(0, 0, 0)},
		{0, 499, 428, render3d.RGB(0, 0, 0)},
	},
	"large_grid_fine": {
		{0, 201, 36, render3d.RGB(208.611, 25.278, 46.389)},
		{0, 130, 82, render3d.RGB(129.722, 76.389, 125.278)},
		{0, 176, 128, render3d.RGB(180.833, 127.5, 74.167)},
		{0, 126, 174, render3d.RGB(125.278, 178.611, 129.722)},
		{0, 45, 220, render3d.RGB(35.278, 229.722, 219.722)},
		{0, 134, 8, render3d.RGB(0, 0, 0)},
		{0, 249, 123, render3d.RGB(0, 0, 0)},
		{0, 121, 247, render3d.RGB(0, 0, 0)},
	},
}

func TestCasePixels(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				checks, ok := casePixels[name]
				if !ok {
					t.Fatal("no sample pixels")
				}
				scene, err := tc.Scene.Build()
				if err != nil {
					t.Fatal(err)
				}
				cams := scene.Cameras()
				frames := make([]*render3d.Frame, len(cams))
				for i, cam := range cams {
					frames[i], _ = render3d.RenderCamera(scene, cam)
				}

				for _, c := range checks {
					got, ok := frames[c.camera].Pixel(c.x, c.y)
					if !ok {
						t.Fatalf("pixel (%d, %d) outside the frame", c.x, c.y)
					}
					if !got.ApproxEqual(c.want, 0.05) {
						t.Errorf("camera %d, pixel (%d, %d) = %v, want %v",
							c.camera, c.x, c.y, got, c.want)
					}
				}
			})
		}
	}
}

// TestGridNoGaps checks that triangles sharing an edge leave no uncovered
// pixels between them.
func TestGridNoGaps(t *testing.T) {
	cases := []struct {
		name   string
		lo, hi int // pixel range strictly inside the grid
	}{
		{"grid", 27, 485},
		{"grid_fine", 14, 242},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var scene *render3d.Scene
			for _, tc := range testcases.All["large"] {
				if tc.Name == c.name {
					var err error
					scene, err = tc.Scene.Build()
					if err != nil {
						t.Fatal(err)
					}
				}
			}
			if scene == nil {
				t.Fatal("test case not found")
			}

			frame, _ := render3d.RenderCamera(scene, scene.Cameras()[0])
			bg := scene.Background()
			gaps := 0
			for y := c.lo; y <= c.hi; y++ {
				for x := c.lo; x <= c.hi; x++ {
					if p, _ := frame.Pixel(x, y); p == bg {
						gaps++
						if gaps <= 5 {
							t.Errorf("pixel (%d, %d) not covered", x, y)
						}
					}
				}
			}
			if gaps > 5 {
				t.Errorf("%d uncovered pixels in total", gaps)
			}
		})
	}
}

