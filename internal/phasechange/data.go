package phasechange

import (
	"chemprop/internal/assets"
	"chemprop/internal/chemdata"
)

// Method names accepted by TbUsing, TmUsing and HfusUsing. The
// constants double as the strings XMethods returns.
const (
	// CRCOrganic is the CRC Handbook organic compounds table.
	CRCOrganic = "CRC_ORG"
	// CRCInorganic is the CRC Handbook inorganic compounds table.
	CRCInorganic = "CRC_INORG"
	// Yaws is the Yaws collection of critical property data.
	Yaws = "YAWS"
	// OpenNotebook is the Open Notebook Science melting point dataset.
	OpenNotebook = "OPEN_NTBKM"
	// CRC is the CRC Handbook enthalpy of fusion table.
	CRC = "CRC"
	// WebBook is the NIST WebBook enthalpy of fusion collection.
	WebBook = "WEBBOOK"
)

var (
	tbCRCOrg   = chemdata.Register(chemdata.NewSource("Tb CRC Organics", assets.FS, "data/phasechange/tb_crc_organic.tsv"))
	tbCRCInorg = chemdata.Register(chemdata.NewSource("Tb CRC Inorganics", assets.FS, "data/phasechange/tb_crc_inorganic.tsv"))
	tbYaws     = chemdata.Register(chemdata.NewSource("Tb Yaws", assets.FS, "data/phasechange/tb_yaws.tsv"))

	tmOpenNtbk = chemdata.Register(chemdata.NewSource("Tm Open Notebook", assets.FS, "data/phasechange/tm_open_notebook.tsv"))
	tmCRCInorg = chemdata.Register(chemdata.NewSource("Tm CRC Inorganics", assets.FS, "data/phasechange/tm_crc_inorganic.tsv"))

	hfusCRC     = chemdata.Register(chemdata.NewSource("Hfus CRC", assets.FS, "data/phasechange/hfus_crc.tsv"))
	hfusWebBook = chemdata.Register(chemdata.NewSource("Hfus WebBook", assets.FS, "data/phasechange/hfus_webbook.tsv"))

	hvapFits = chemdata.Register(chemdata.NewSource("Hvap Watson Fits", assets.FS, "data/phasechange/hvap_watson_fits.tsv"))
)

// Binding order fixes method priority for the whole process.
var (
	tbBindings = []chemdata.Binding{
		{Method: CRCOrganic, Lookup: chemdata.Column(tbCRCOrg, "Tb")},
		{Method: CRCInorganic, Lookup: chemdata.Column(tbCRCInorg, "Tb")},
		{Method: Yaws, Lookup: chemdata.Column(tbYaws, "Tb")},
	}

	tmBindings = []chemdata.Binding{
		{Method: OpenNotebook, Lookup: chemdata.Column(tmOpenNtbk, "Tm")},
		{Method: CRCInorganic, Lookup: chemdata.Column(tmCRCInorg, "Tm")},
	}

	hfusBindings = []chemdata.Binding{
		{Method: CRC, Lookup: chemdata.Column(hfusCRC, "Hfus")},
		{Method: WebBook, Lookup: chemdata.Column(hfusWebBook, "Hfus")},
	}
)
