package ffi

// SymbolNames is the fixed, ordered list of PDFium entry points re-exported
// through the bulk binding table. The order is a binary contract with
// consumers that bind by table position instead of by name; append new
// symbols at the end, never reorder or remove.
var SymbolNames = []string{
	"FPDF_InitLibraryWithConfig",
	"FPDF_InitLibrary",
	"FPDF_DestroyLibrary",
	"FPDF_SetSandBoxPolicy",
	"FPDF_LoadDocument",
	"FPDF_LoadMemDocument",
	"FPDF_LoadMemDocument64",
	"FPDF_LoadCustomDocument",
	"FPDF_GetFileVersion",
	"FPDF_GetLastError",
	"FPDF_DocumentHasValidCrossReferenceTable",
	"FPDF_GetTrailerEnds",
	"FPDF_GetDocPermissions",
	"FPDF_GetSecurityHandlerRevision",
	"FPDF_GetPageCount",
	"FPDF_LoadPage",
	"FPDF_GetPageWidthF",
	"FPDF_GetPageWidth",
	"FPDF_GetPageHeightF",
	"FPDF_GetPageHeight",
	"FPDF_GetPageBoundingBox",
	"FPDF_GetPageSizeByIndexF",
	"FPDF_GetPageSizeByIndex",
	"FPDF_RenderPageBitmap",
	"FPDF_RenderPageBitmapWithMatrix",
	"FPDF_ClosePage",
	"FPDF_CloseDocument",
	"FPDF_DeviceToPage",
	"FPDF_PageToDevice",
	"FPDF_VIEWERREF_GetPrintScaling",
	"FPDF_VIEWERREF_GetNumCopies",
	"FPDF_VIEWERREF_GetPrintPageRange",
	"FPDF_VIEWERREF_GetPrintPageRangeCount",
	"FPDF_VIEWERREF_GetPrintPageRangeElement",
	"FPDF_VIEWERREF_GetDuplex",
	"FPDF_VIEWERREF_GetName",
	"FPDF_CountNamedDests",
	"FPDF_GetNamedDestByName",
	"FPDF_GetNamedDest",
	"FPDF_GetXFAPacketCount",
	"FPDF_GetXFAPacketName",
	"FPDF_GetXFAPacketContent",
}

// resolveBinding resolves every name in SymbolNames against the loaded
// library, in table order.
func resolveBinding(handle uintptr) ([]uintptr, error) {
	table := make([]uintptr, len(SymbolNames))
	for i, name := range SymbolNames {
		addr, err := lookupSymbol(handle, name)
		if err != nil {
			return nil, err
		}
		table[i] = addr
	}
	return table, nil
}
