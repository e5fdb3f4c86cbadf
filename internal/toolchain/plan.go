package toolchain

import "path/filepath"

// Plan returns the artifacts to place for src, in placement order. Every
// artifact is listed even when its source is not configured, so a caller
// can show what would be skipped. src paths must be absolute.
func Plan(src Sources, l Layout) []Artifact {
	p := l.Platform
	var plan []Artifact
	add := func(a Artifact) { plan = append(plan, a) }

	// Compiler. The driver is hard linked so that it resolves lib/swift
	// from the fake toolchain, not from its build directory. It is the one
	// artifact a toolchain cannot do without.
	var compilerLib string
	if src.Swiftc != "" {
		compilerLib = filepath.Clean(filepath.Join(filepath.Dir(src.Swiftc), "..", "lib"))
	}
	add(Artifact{Name: "swift", Kind: KindHardlink, Source: src.Swiftc, Dest: filepath.Join(binRel, "swift"), Required: true})
	swiftc := Artifact{Name: "swiftc", Kind: KindSymlink, Dest: filepath.Join(binRel, "swiftc"), LinkText: "swift"}
	if src.Swiftc != "" {
		swiftc.Source = l.Swift()
	}
	add(swiftc)
	add(Artifact{Name: "swift-stdlib", Kind: KindMirror, Source: under(compilerLib, "swift"), Dest: libSwiftRel})
	add(Artifact{Name: "sourcekitd", Kind: KindSymlink, Source: under(compilerLib, "sourcekitd.framework"), Dest: filepath.Join(libRel, "sourcekitd.framework")})
	add(Artifact{Name: "sourcekitd-inproc", Kind: KindSymlink, Source: under(compilerLib, p.SharedLib("sourcekitdInProc")), Dest: filepath.Join(libRel, p.SharedLib("sourcekitdInProc"))})

	// SwiftPM. Explicit paths win over the bootstrap build directory.
	add(Artifact{Name: "swiftpm-runtime", Kind: KindMirror, Source: under(src.SwiftPMBootstrap, "lib", "swift", "pm"), Dest: filepath.Join(libSwiftRel, "pm")})
	add(Artifact{Name: "swift-build", Kind: KindSymlink, Source: firstNonEmpty(src.SwiftBuild, under(src.SwiftPMBootstrap, "swift-build")), Dest: filepath.Join(binRel, "swift-build")})
	add(Artifact{Name: "swift-build-tool", Kind: KindSymlink, Source: src.SwiftBuildTool, Dest: filepath.Join(binRel, "swift-build-tool")})
	add(Artifact{Name: "swift-test", Kind: KindSymlink, Source: firstNonEmpty(src.SwiftTest, under(src.SwiftPMBootstrap, "swift-test")), Dest: filepath.Join(binRel, "swift-test")})

	// libdispatch.
	dispatchLib := p.SharedLib("dispatch")
	blocksLib := p.SharedLib("BlocksRuntime")
	add(Artifact{Name: "libdispatch", Kind: KindSymlink, Source: under(src.LibdispatchBuildDir, "src", dispatchLib), Dest: l.platformRel(dispatchLib)})
	add(Artifact{Name: "libBlocksRuntime", Kind: KindSymlink, Source: under(src.LibdispatchBuildDir, blocksLib), Dest: l.platformRel(blocksLib)})
	for _, ext := range []string{".swiftmodule", ".swiftdoc"} {
		add(Artifact{Name: "Dispatch" + ext, Kind: KindSymlink, Source: under(src.LibdispatchBuildDir, "src", "swift", "Dispatch"+ext), Dest: l.modulesRel("Dispatch" + ext)})
	}
	add(Artifact{Name: "dispatch-headers", Kind: KindMirror, Source: under(src.LibdispatchSourceDir, "dispatch"), Dest: filepath.Join(libSwiftRel, "dispatch")})
	add(Artifact{Name: "os-headers", Kind: KindMirror, Source: under(src.LibdispatchSourceDir, "os"), Dest: filepath.Join(libSwiftRel, "os")})

	// Foundation.
	foundationLib := p.SharedLib("Foundation")
	add(Artifact{Name: "libFoundation", Kind: KindSymlink, Source: under(src.FoundationBuildDir, foundationLib), Dest: l.platformRel(foundationLib)})
	for _, ext := range []string{".swiftmodule", ".swiftdoc"} {
		add(Artifact{Name: "Foundation" + ext, Kind: KindSymlink, Source: under(src.FoundationBuildDir, "swift", "Foundation"+ext), Dest: l.modulesRel("Foundation" + ext)})
	}
	add(Artifact{Name: "CoreFoundation", Kind: KindMirror, Source: under(src.FoundationBuildDir, "usr", "lib", "swift", "CoreFoundation"), Dest: filepath.Join(libSwiftRel, "CoreFoundation")})
	add(Artifact{Name: "CoreFoundation-headers", Kind: KindMirror, Source: under(src.FoundationSourceDir, "CoreFoundation", "include"), Dest: filepath.Join(libSwiftRel, "CoreFoundation")})

	// XCTest.
	xctestLib := p.SharedLib("XCTest")
	add(Artifact{Name: "libXCTest", Kind: KindSymlink, Source: under(src.XCTest, xctestLib), Dest: l.platformRel(xctestLib)})
	for _, ext := range []string{".swiftmodule", ".swiftdoc"} {
		add(Artifact{Name: "XCTest" + ext, Kind: KindSymlink, Source: under(src.XCTest, "XCTest"+ext), Dest: l.modulesRel("XCTest" + ext)})
	}

	return plan
}
