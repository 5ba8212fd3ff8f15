package glu

// Enum is a GLenum value accepted or returned by GLU.
type Enum uint32

const (
	// Boolean
	False Enum = 0x0
	True  Enum = 0x1

	// Version
	Version1_1 Enum = 0x1
	Version1_2 Enum = 0x1

	// Quadric normals
	Flat   Enum = 0x186a1
	None   Enum = 0x186a2
	Smooth Enum = 0x186a0

	// Quadric draw styles
	Fill       Enum = 0x186ac
	Line       Enum = 0x186ab
	Point      Enum = 0x186aa
	Silhouette Enum = 0x186ad

	// Quadric orientation
	Inside  Enum = 0x186b5
	Outside Enum = 0x186b4

	// Errors
	IncompatibleGLVersion Enum = 0x18a27
	InvalidEnum           Enum = 0x18a24
	InvalidValue          Enum = 0x18a25
	OutOfMemory           Enum = 0x18a26

	// String names
	Extensions Enum = 0x189c1
	Version    Enum = 0x189c0

	// Tessellation properties
	TessBoundaryOnly Enum = 0x1872d
	TessTolerance    Enum = 0x1872e
	TessWindingRule  Enum = 0x1872c

	// Tessellation winding
	TessWindingAbsGeqTwo Enum = 0x18726
	TessWindingNegative  Enum = 0x18725
	TessWindingNonzero   Enum = 0x18723
	TessWindingOdd       Enum = 0x18722
	TessWindingPositive  Enum = 0x18724

	// Tessellation callbacks
	TessBegin        Enum = 0x18704
	TessBeginData    Enum = 0x1870a
	TessVertex       Enum = 0x18705
	TessVertexData   Enum = 0x1870b
	TessEnd          Enum = 0x18706
	TessEndData      Enum = 0x1870c
	TessError        Enum = 0x18707
	TessErrorData    Enum = 0x1870d
	TessEdgeFlag     Enum = 0x18708
	TessEdgeFlagData Enum = 0x1870e
	TessCombine      Enum = 0x18709
	TessCombineData  Enum = 0x1870f

	// Tessellation errors
	TessError1 Enum = 0x18737
	TessError2 Enum = 0x18738
	TessError3 Enum = 0x18739
	TessError4 Enum = 0x1873a
	TessError5 Enum = 0x1873b
	TessError6 Enum = 0x1873c
	TessError7 Enum = 0x1873d
	TessError8 Enum = 0x1873e

	// NURBS properties
	AutoLoadMatrix      Enum = 0x18768
	Culling             Enum = 0x18769
	ParametricTolerance Enum = 0x1876a
	SamplingTolerance   Enum = 0x1876b
	DisplayMode         Enum = 0x1876c
	SamplingMethod      Enum = 0x1876d
	UStep               Enum = 0x1876e
	VStep               Enum = 0x1876f

	// NURBS sampling
	PathLength      Enum = 0x18777
	ParametricError Enum = 0x18778
	DomainDistance  Enum = 0x18779

	// NURBS trim
	Map1Trim2 Enum = 0x18772
	Map1Trim3 Enum = 0x18773

	// NURBS display
	OutlinePolygon Enum = 0x18790
	OutlinePatch   Enum = 0x18791

	// NURBS errors
	NurbsError1  Enum = 0x1879b
	NurbsError2  Enum = 0x1879c
	NurbsError3  Enum = 0x1879d
	NurbsError4  Enum = 0x1879e
	NurbsError5  Enum = 0x1879f
	NurbsError6  Enum = 0x187a0
	NurbsError7  Enum = 0x187a1
	NurbsError8  Enum = 0x187a2
	NurbsError9  Enum = 0x187a3
	NurbsError10 Enum = 0x187a4
	NurbsError11 Enum = 0x187a5
	NurbsError12 Enum = 0x187a6
	NurbsError13 Enum = 0x187a7
	NurbsError14 Enum = 0x187a8
	NurbsError15 Enum = 0x187a9
	NurbsError16 Enum = 0x187aa
	NurbsError17 Enum = 0x187ab
	NurbsError18 Enum = 0x187ac
	NurbsError19 Enum = 0x187ad
	NurbsError20 Enum = 0x187ae
	NurbsError21 Enum = 0x187af
	NurbsError22 Enum = 0x187b0
	NurbsError23 Enum = 0x187b1
	NurbsError24 Enum = 0x187b2
	NurbsError25 Enum = 0x187b3
	NurbsError26 Enum = 0x187b4
	NurbsError27 Enum = 0x187b5
	NurbsError28 Enum = 0x187b6
	NurbsError29 Enum = 0x187b7
	NurbsError30 Enum = 0x187b8
	NurbsError31 Enum = 0x187b9
	NurbsError32 Enum = 0x187ba
	NurbsError33 Enum = 0x187bb
	NurbsError34 Enum = 0x187bc
	NurbsError35 Enum = 0x187bd
	NurbsError36 Enum = 0x187be
	NurbsError37 Enum = 0x187bf

	// Legacy contour types
	CW       Enum = 0x18718
	CCW      Enum = 0x18719
	Interior Enum = 0x1871a
	Exterior Enum = 0x1871b
	Unknown  Enum = 0x1871c
)
