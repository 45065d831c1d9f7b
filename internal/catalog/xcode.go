package catalog

import "path/filepath"

// Xcode cache locations under the user's Library. Every template expands one
// level of children so cleaning empties a root without removing the root
// directory itself — Xcode expects the parent directories to exist.
var (
	xcodeDir     = filepath.Join("Library", "Developer", "Xcode")
	cachesDir    = filepath.Join("Library", "Caches")
	simulatorDir = filepath.Join("Library", "Developer", "CoreSimulator")
)

// defaultCategories returns the built-in Xcode cleanup categories in
// display order.
func defaultCategories() []Category {
	return []Category{
		{
			ID:              "derived-data",
			Name:            "Derived Data",
			Description:     "Build artifacts and intermediate files. Safe to delete - Xcode will rebuild them.",
			TypicalSize:     "5-50GB",
			Safety:          SafetySafe,
			DefaultSelected: true,
			Templates: []Template{
				{Home: true, Path: filepath.Join(xcodeDir, "DerivedData"), Children: "*"},
			},
		},
		{
			ID:              "device-support",
			Name:            "Device Support Files",
			Description:     "Support files for old iOS versions from connected devices.",
			TypicalSize:     "1-10GB",
			Safety:          SafetySafe,
			DefaultSelected: true,
			Templates: []Template{
				// One folder per iOS version, e.g. "17.4 (21E219)".
				{Home: true, Path: filepath.Join(xcodeDir, "iOS DeviceSupport"), Children: "*"},
			},
		},
		{
			ID:              "simulator-caches",
			Name:            "Simulator Caches",
			Description:     "Cache files from iOS Simulators. Safe to delete - simulators will recreate them.",
			TypicalSize:     "1-5GB",
			Safety:          SafetySafe,
			DefaultSelected: true,
			Templates: []Template{
				{Home: true, Path: filepath.Join(simulatorDir, "Caches"), Children: "*"},
			},
		},
		{
			ID:              "archives",
			Name:            "Archives",
			Description:     "Old app builds (.xcarchive files). Only delete if you don't need old builds.",
			TypicalSize:     "1-20GB",
			Safety:          SafetyCaution,
			DefaultSelected: false,
			Templates: []Template{
				{Home: true, Path: filepath.Join(xcodeDir, "Archives"), Children: "*"},
			},
		},
		{
			ID:              "device-logs",
			Name:            "Device Logs",
			Description:     "Debug logs from connected iOS devices. Safe to delete.",
			TypicalSize:     "100MB-1GB",
			Safety:          SafetySafe,
			DefaultSelected: true,
			Templates: []Template{
				{Home: true, Path: filepath.Join(xcodeDir, "iOS Device Logs"), Children: "*"},
			},
		},
		{
			ID:              "swiftpm-cache",
			Name:            "Swift Package Manager Cache",
			Description:     "Downloaded Swift packages. Safe to delete - they'll be re-downloaded when needed.",
			TypicalSize:     "1-5GB",
			Safety:          SafetySafe,
			DefaultSelected: true,
			Templates: []Template{
				{Home: true, Path: filepath.Join(cachesDir, "org.swift.swiftpm"), Children: "*"},
			},
		},
		{
			ID:              "previews",
			Name:            "Xcode Previews",
			Description:     "SwiftUI Preview cache files. Safe to delete - Xcode will regenerate them.",
			TypicalSize:     "500MB-2GB",
			Safety:          SafetySafe,
			DefaultSelected: true,
			Templates: []Template{
				{Home: true, Path: filepath.Join(xcodeDir, "Previews"), Children: "*"},
			},
		},
		{
			ID:              "xcode-caches",
			Name:            "System Caches",
			Description:     "Various Xcode-related system caches. Advanced option.",
			TypicalSize:     "1-3GB",
			Safety:          SafetyAdvanced,
			DefaultSelected: false,
			Templates: []Template{
				{Home: true, Path: filepath.Join(cachesDir, "com.apple.dt.Xcode"), Children: "*"},
			},
		},
	}
}
