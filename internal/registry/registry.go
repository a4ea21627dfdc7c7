// Package registry maps ASF object GUIDs to their canonical names.
//
// The table is built once at package initialization and never modified,
// so lookups are safe for concurrent use.
package registry

import (
	"maps"
	"slices"

	"github.com/simonhull/asfmeta/internal/types"
)

// Unknown is the name given to GUIDs that are not in the table.
const Unknown = "Unknown"

// Names of the objects the parser acts on.
const (
	HeaderObject               = "ASF_Header_Object"
	FileProperties             = "ASF_File_Properties_Object"
	StreamProperties           = "ASF_Stream_Properties_Object"
	ContentDescription         = "ASF_Content_Description_Object"
	ExtendedContentDescription = "ASF_Extended_Content_Description_Object"
	ContentEncryption          = "ASF_Content_Encryption_Object"
	ExtendedContentEncryption  = "ASF_Extended_Content_Encryption_Object"
	Data                       = "ASF_Data_Object"
	AudioMedia                 = "ASF_Audio_Media"
	VideoMedia                 = "ASF_Video_Media"
	NoErrorCorrection          = "ASF_No_Error_Correction"
	AudioSpread                = "ASF_Audio_Spread"
	HeaderExtension            = "ASF_Header_Extension_Object"
	CodecList                  = "ASF_Codec_List_Object"
	Padding                    = "ASF_Padding_Object"
	StreamBitrateProperties    = "ASF_Stream_Bitrate_Properties_Object"
)

var known = map[string]string{
	"ASF_Extended_Stream_Properties_Object":   "14E6A5CB-C672-4332-8399-A96952065B5A",
	Padding:                                   "1806D474-CADF-4509-A4BA-9AABCB96AAE8",
	"ASF_Payload_Ext_Syst_Pixel_Aspect_Ratio": "1B1EE554-F9EA-4BC8-821A-376B74E4C4B8",
	"ASF_Script_Command_Object":               "1EFB1A30-0B62-11D0-A39B-00A0C90348F6",
	NoErrorCorrection:                         "20FB5700-5B55-11CF-A8FD-00805F5C442B",
	"ASF_Content_Branding_Object":             "2211B3FA-BD23-11D2-B4B7-00A0C955FC6E",
	ContentEncryption:                         "2211B3FB-BD23-11D2-B4B7-00A0C955FC6E",
	"ASF_Digital_Signature_Object":            "2211B3FC-BD23-11D2-B4B7-00A0C955FC6E",
	ExtendedContentEncryption:                 "298AE614-2622-4C17-B935-DAE07EE9289C",
	"ASF_Simple_Index_Object":                 "33000890-E5B1-11CF-89F4-00A0C90349CB",
	"ASF_Degradable_JPEG_Media":               "35907DE0-E415-11CF-A917-00805F5C442B",
	"ASF_Payload_Extension_System_Timecode":   "399595EC-8667-4E2D-8FDB-98814CE76C1E",
	"ASF_Binary_Media":                        "3AFB65E2-47EF-40F2-AC2C-70A90D71D343",
	"ASF_Timecode_Index_Object":               "3CB73FD0-0C4A-4803-953D-EDF7B6228F0C",
	"ASF_Metadata_Library_Object":             "44231C94-9498-49D1-A141-1D134E457054",
	"ASF_Reserved_3":                          "4B1ACBE3-100B-11D0-A39B-00A0C90348F6",
	"ASF_Reserved_4":                          "4CFEDB20-75F6-11CF-9C0F-00A0C90349CB",
	"ASF_Command_Media":                       "59DACFC0-59E6-11D0-A3AC-00A0C90348F6",
	HeaderExtension:                           "5FBF03B5-A92E-11CF-8EE3-00C00C205365",
	"ASF_Media_Object_Index_Parameters_Obj":   "6B203BAD-3F11-4E84-ACA8-D7613DE2CFA7",
	HeaderObject:                              "75B22630-668E-11CF-A6D9-00AA0062CE6C",
	ContentDescription:                        "75B22633-668E-11CF-A6D9-00AA0062CE6C",
	"ASF_Error_Correction_Object":             "75B22635-668E-11CF-A6D9-00AA0062CE6C",
	Data:                                      "75B22636-668E-11CF-A6D9-00AA0062CE6C",
	"ASF_Web_Stream_Media_Subtype":            "776257D4-C627-41CB-8F81-7AC7FF1C40CC",
	StreamBitrateProperties:                   "7BF875CE-468D-11D1-8D82-006097C9A2B2",
	"ASF_Language_List_Object":                "7C4346A9-EFE0-4BFC-B229-393EDE415C85",
	CodecList:                                 "86D15240-311D-11D0-A3A4-00A0C90348F6",
	"ASF_Reserved_2":                          "86D15241-311D-11D0-A3A4-00A0C90348F6",
	FileProperties:                            "8CABDCA1-A947-11CF-8EE4-00C00C205365",
	"ASF_File_Transfer_Media":                 "91BD222C-F21C-497A-8B6D-5AA86BFC0185",
	"ASF_Advanced_Mutual_Exclusion_Object":    "A08649CF-4775-4670-8A16-6E35357566CD",
	"ASF_Bandwidth_Sharing_Object":            "A69609E6-517B-11D2-B6AF-00C04FD908E9",
	"ASF_Reserved_1":                          "ABD3D211-A9BA-11CF-8EE6-00C00C205365",
	"ASF_Bandwidth_Sharing_Exclusive":         "AF6060AA-5197-11D2-B6AF-00C04FD908E9",
	"ASF_Bandwidth_Sharing_Partial":           "AF6060AB-5197-11D2-B6AF-00C04FD908E9",
	"ASF_JFIF_Media":                          "B61BE100-5B4E-11CF-A8FD-00805F5C442B",
	StreamProperties:                          "B7DC0791-A9B7-11CF-8EE6-00C00C205365",
	VideoMedia:                                "BC19EFC0-5B4D-11CF-A8FD-00805F5C442B",
	AudioSpread:                               "BFC3CD50-618F-11CF-8BB2-00AA00B4E220",
	"ASF_Metadata_Object":                     "C5F8CBEA-5BAF-4877-8467-AA8C44FA4CCA",
	"ASF_Payload_Ext_Syst_Sample_Duration":    "C6BD9450-867F-4907-83A3-C77921B733AD",
	"ASF_Group_Mutual_Exclusion_Object":       "D1465A40-5A79-4338-B71B-E36B8FD6C249",
	ExtendedContentDescription:                "D2D0A440-E307-11D2-97F0-00A0C95EA850",
	"ASF_Stream_Prioritization_Object":        "D4FED15B-88D3-454F-81F0-ED5C45999E24",
	"ASF_Payload_Ext_System_Content_Type":     "D590DC20-07BC-436C-9CF7-F3BBFBF1A4DC",
	"ASF_Index_Object":                        "D6E229D3-35DA-11D1-9034-00A0C90349BE",
	"ASF_Bitrate_Mutual_Exclusion_Object":     "D6E229DC-35DA-11D1-9034-00A0C90349BE",
	"ASF_Index_Parameters_Object":             "D6E229DF-35DA-11D1-9034-00A0C90349BE",
	"ASF_Mutex_Language":                      "D6E22A00-35DA-11D1-9034-00A0C90349BE",
	"ASF_Mutex_Bitrate":                       "D6E22A01-35DA-11D1-9034-00A0C90349BE",
	"ASF_Mutex_Unknown":                       "D6E22A02-35DA-11D1-9034-00A0C90349BE",
	"ASF_Web_Stream_Format":                   "DA1E6B13-8359-4050-B398-388E965BF00C",
	"ASF_Payload_Ext_System_File_Name":        "E165EC0E-19ED-45D7-B4A7-25CBD1E28E9B",
	"ASF_Marker_Object":                       "F487CD01-A951-11CF-8EE6-00C00C205365",
	"ASF_Timecode_Index_Parameters_Object":    "F55E496D-9797-4B5D-8C8B-604DFE9BFB24",
	AudioMedia:                                "F8699E40-5B4D-11CF-A8FD-00805F5C442B",
	"ASF_Media_Object_Index_Object":           "FEB103F8-12AD-4C64-840F-2A1D2F7AD48C",
	"ASF_Alt_Extended_Content_Encryption_Obj": "FF889EF1-ADEE-40DA-9E71-98704BB928CE",
}

var (
	byGUID = make(map[types.GUID]string, len(known))
	byName = make(map[string]types.GUID, len(known))
)

func init() {
	for name, text := range known {
		g := types.MustParseGUID(text)
		byGUID[g] = name
		byName[name] = g
	}
}

// Name returns the name registered for g.
func Name(g types.GUID) (string, bool) {
	name, ok := byGUID[g]
	return name, ok
}

// NameOrUnknown returns the name registered for g, or Unknown.
func NameOrUnknown(g types.GUID) string {
	if name, ok := byGUID[g]; ok {
		return name
	}
	return Unknown
}

// Lookup returns the GUID registered under name.
func Lookup(name string) (types.GUID, bool) {
	g, ok := byName[name]
	return g, ok
}

// MustLookup is like Lookup but panics if name is not registered.
func MustLookup(name string) types.GUID {
	g, ok := byName[name]
	if !ok {
		panic("registry: unknown object name " + name)
	}
	return g
}

// Names returns every registered name in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(byName))
}
