package fbx

// property is one "P:" entry of a Properties70 block.
// Values may be string, int, int64 or float64.
type property struct {
	name   string
	typ    string
	label  string
	values []any
}

// Fixed creation metadata. The timestamp is static so that repeated runs
// produce identical files.
const (
	fileComment      = "; FBX 7.7.0 project file"
	headerVersion    = 1003
	fbxVersion       = 7700
	creator          = "UnitSphere Generator"
	settingsVersion  = 1000
	definitionsVer   = 100
	modelVersion     = 232
	geometryVersion  = 124
	timeSpanStop     = int64(153953860000)
	defaultObjectTag = "UnitSphere"
)

type timestamp struct {
	year, month, day, hour, minute, second, millisecond int
}

var creationTime = timestamp{year: 2024, month: 1, day: 1}

// Y up, Z front, X coord axis, unit scale 1.
var globalSettingsProperties = []property{
	{"UpAxis", "int", "Integer", []any{1}},
	{"UpAxisSign", "int", "Integer", []any{1}},
	{"FrontAxis", "int", "Integer", []any{2}},
	{"FrontAxisSign", "int", "Integer", []any{1}},
	{"CoordAxis", "int", "Integer", []any{0}},
	{"CoordAxisSign", "int", "Integer", []any{1}},
	{"OriginalUpAxis", "int", "Integer", []any{1}},
	{"OriginalUpAxisSign", "int", "Integer", []any{1}},
	{"UnitScaleFactor", "double", "Number", []any{1.0}},
	{"OriginalUnitScaleFactor", "double", "Number", []any{1.0}},
	{"AmbientColor", "ColorRGB", "Color", []any{0.4, 0.4, 0.4}},
	{"DefaultCamera", "KString", "", []any{"Producer Perspective"}},
	{"TimeMode", "enum", "", []any{6}},
	{"TimeProtocol", "enum", "", []any{2}},
	{"SnapOnFrameMode", "enum", "", []any{0}},
	{"TimeSpanStart", "KTime", "Time", []any{int64(0)}},
	{"TimeSpanStop", "KTime", "Time", []any{timeSpanStop}},
	{"CustomFrameRate", "double", "Number", []any{-1.0}},
	{"TimeMarker", "Compound", "", nil},
	{"CurrentTimeMarker", "int", "Integer", []any{-1}},
}

var documentProperties = []property{
	{"SourceObject", "object", "", nil},
	{"ActiveAnimStackName", "KString", "", []any{""}},
}

// The model template repeats DefaultAttributeIndex; consuming readers
// expect the entry twice.
var modelProperties = []property{
	{"DefaultAttributeIndex", "int", "Integer", []any{0}},
	{"DefaultAttributeIndex", "int", "Integer", []any{0}},
}

var geometryProperties = []property{
	{"Color", "ColorRGB", "Color", []any{0.8, 0.8, 0.8}},
}

func quoted(s string) string {
	return `"` + s + `"`
}

func (e *encoder) header() {
	e.line(fileComment)
	e.line("; ----------------------------------------------------")
	e.blank()

	e.open("FBXHeaderExtension", "")
	e.intField("FBXHeaderVersion", headerVersion)
	e.intField("FBXVersion", fbxVersion)
	e.open("CreationTimeStamp", "")
	e.intField("Version", 1000)
	e.intField("Year", creationTime.year)
	e.intField("Month", creationTime.month)
	e.intField("Day", creationTime.day)
	e.intField("Hour", creationTime.hour)
	e.intField("Minute", creationTime.minute)
	e.intField("Second", creationTime.second)
	e.intField("Millisecond", creationTime.millisecond)
	e.close()
	e.field("Creator", quoted(creator))
	e.open("OtherFlags", "")
	e.intField("FlagPLE", 0)
	e.close()
	e.close()
	e.blank()
}

func (e *encoder) globalSettingsBody() {
	e.intField("Version", settingsVersion)
	e.properties(globalSettingsProperties)
}

func (e *encoder) globalSettings() {
	e.open("GlobalSettings", "")
	e.globalSettingsBody()
	e.close()
	e.blank()
}

func (e *encoder) documents(name string) {
	e.open("Documents", "")
	e.intField("Count", 1)
	e.open("Document", "*1")
	e.line(quoted("Document::"+name) + ", " + quoted("Scene"))
	e.properties(documentProperties)
	e.intField("RootNode", 0)
	e.close()
	e.close()
	e.blank()

	e.open("References", "")
	e.close()
	e.blank()
}

func (e *encoder) definitions() {
	e.open("Definitions", "")
	e.intField("Version", definitionsVer)
	e.intField("Count", 2)
	e.open("ObjectType", quoted("GlobalSettings"))
	e.intField("Count", 1)
	e.close()
	e.open("ObjectType", quoted("Model"))
	e.intField("Count", 1)
	e.open("PropertyTemplate", quoted("FbxNode"))
	e.properties(modelProperties)
	e.close()
	e.close()
	e.close()
	e.blank()
}

func (e *encoder) objects(name string) {
	e.open("Objects", "")
	e.open("GlobalSettings", "*0")
	e.globalSettingsBody()
	e.close()
	e.open("Model", quoted("Model::"+name)+", "+quoted("Mesh"))
	e.intField("Version", modelVersion)
	e.properties(modelProperties)
	e.intField("MultiLayer", 0)
	e.intField("MultiTake", 0)
	e.field("Shading", "Y")
	e.field("Culling", quoted("CullingOff"))
	e.close()
	e.close()
	e.blank()
}

// connections links the model (1) to the scene root (0).
func (e *encoder) connections() {
	e.open("Connections", "")
	e.line(`C: "OO",0,1`)
	e.close()
	e.blank()
}
