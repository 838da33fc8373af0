package extract

// Vocabulary is the fixed word-list configuration the extractors and the
// plausibility filter run against. It is built once at startup and never
// mutated.
type Vocabulary struct {
	// Skills is the fixed skill vocabulary matched against resume text.
	Skills []string
	// SectionHeaders are resume section titles a name can never equal.
	SectionHeaders []string
	// Connectors are lowercase particles allowed inside a name.
	Connectors []string
	// FilenameStopWords are tokens discarded when deriving a name from a
	// file name.
	FilenameStopWords []string
	// SubjectKeywords are mail-thread and application words stripped from
	// subject lines before name search.
	SubjectKeywords []string
	// JobTitles are role words stripped from subject lines and resume
	// header lines.
	JobTitles []string
	// ExperienceHeaders open an experience section, ExperienceEnders close
	// one. Matched case-insensitively, first hit wins.
	ExperienceHeaders []string
	// ExperienceEnders are the section headers that bound an experience
	// section from below.
	ExperienceEnders []string
}

// DefaultVocabulary returns the built-in word lists. The skill list targets
// the VLSI/semiconductor hiring domain the pipeline was built for.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Skills:         defaultSkills(),
		SectionHeaders: defaultSectionHeaders(),
		Connectors:     []string{"de", "van", "la", "del", "da", "di", "du", "and", "the"},
		FilenameStopWords: []string{
			"final", "new", "old", "updated", "latest", "version", "v",
			"doc", "pdf", "docx", "for", "resume", "cv", "bio", "profile",
			"curriculum", "vitae",
		},
		SubjectKeywords: []string{
			"resume", "cv", "application", "job application", "c.v.", "bio-data",
			"for the position of", "applicant", "candidate", "re", "fw", "fwd",
		},
		JobTitles: []string{
			"software engineer", "data scientist", "manager", "developer",
			"analyst", "specialist", "intern", "associate",
		},
		ExperienceHeaders: []string{
			"EXPERIENCE", "WORK EXPERIENCE", "PROFESSIONAL EXPERIENCE",
			"EMPLOYMENT HISTORY", "JOB HISTORY",
		},
		ExperienceEnders: []string{
			"EDUCATION", "SKILLS", "PROJECTS", "AWARDS", "CERTIFICATIONS",
			"PUBLICATIONS", "VOLUNTEER EXPERIENCE", "REFERENCES", "INTERESTS",
		},
	}
}

func defaultSectionHeaders() []string {
	return []string{
		"resume", "curriculum vitae", "contact information", "personal details",
		"profile", "summary", "experience", "education", "skills", "about me",
		"references", "work experience", "professional summary", "achievements",
		"projects", "interests", "cv", "bio", "contact", "email", "phone",
		"linkedin",
	}
}

func defaultSkills() []string {
	return []string{
		// Digital design
		"Verilog", "VHDL", "SystemVerilog", "RTL Design", "Logic Synthesis",
		"Static Timing Analysis", "STA", "Formal Verification", "Linting",
		"Clock Domain Crossing", "CDC", "Reset Domain Crossing", "RDC",
		"Low Power Design", "Power Analysis", "FPGA Design", "ASIC Design",
		"Combinational Logic", "Sequential Logic", "Finite State Machines", "FSM",
		"Pipelining", "Data Paths", "Control Paths", "Memory Design", "SRAM", "DRAM",
		"I/O Interfaces", "SPI", "I2C", "UART", "ARM Architecture", "RISC-V",
		"Cache Coherence", "High-Level Synthesis", "Synthesis", "Netlist",
		"Timing Closure", "Digital Logic", "Verilog-HDL", "VHDL-AMS",

		// Design verification
		"UVM", "Universal Verification Methodology", "Specman E", "PSL",
		"SVA", "SystemVerilog Assertions", "Functional Verification",
		"Testbench Architecture", "Test Plan", "Coverage Driven Verification", "CDV",
		"Constrained Random Verification", "CRV", "Model Checking",
		"Assertion-Based Verification", "ABV", "Emulation", "FPGA Prototyping",
		"Regression Management", "Bug Tracking", "Gate Level Simulation", "GLS",
		"Transaction-Level Modeling", "TLM", "Scoreboarding", "Monitors", "Drivers",
		"Sequencers", "Checkers", "Functional Coverage", "Code Coverage",
		"Protocol Verification", "VIP", "Verification IP", "Debugging", "Verdi",
		"VCS", "QuestaSim", "Incisive", "Xcelium", "FormalPro", "SpyGlass",
		"JasperGold", "Symphony", "Unified Power Format", "UPF", "CPF",
		"Verification Methodology", "Verification Plan", "Coverage Closure",
		"Formal Equivalence Checking", "LEC", "Assertions", "Test Automation",

		// Design for testability
		"Scan Insertion", "ATPG", "Automatic Test Pattern Generation", "JTAG",
		"Boundary Scan", "MBIST", "Memory Built-In Self-Test", "LBIST",
		"Logic Built-In Self-Test", "Fault Simulation", "Stuck-at Faults",
		"Transition Faults", "Bridging Faults", "Test Compression", "DFT Sign-off",
		"Diagnosis", "ATE", "Automatic Test Equipment", "Scan Chains", "Test Modes",
		"Fault Models", "Test Coverage", "IP-level DFT", "System-level DFT",
		"Delay Testing", "At-speed Testing", "TetraMax", "TestKompress", "DFT Compiler",
		"Tessent", "OpTest", "DFTMAX", "DesignWare", "Pattern Generation",
		"Fault Coverage", "Manufacturing Test", "Yield Improvement",

		// Physical design
		"Physical Design", "Layout Design", "Floorplanning", "Power Grid Network", "PGN",
		"Placement", "Clock Tree Synthesis", "CTS", "Routing", "ECO", "Engineering Change Order",
		"Design Rule Check", "DRC", "Layout Versus Schematic", "LVS", "Parasitic Extraction", "PEX",
		"Power Integrity", "Signal Integrity", "IR Drop Analysis", "EM", "Electromigration",
		"Physical Verification", "DFM", "Design for Manufacturability",
		"Cadence Innovus", "Synopsys ICC", "Synopsys ICC2", "Siemens Aprisa", "PrimeTime",
		"Quantus", "Voltus", "Tempus", "Calibre", "StarRC", "NanoRoute", "RedHawk",
		"Chip Assembly", "Tapeout", "GDSII", "LEF", "DEF", "Liberty Format", ".lib",
		"Low Power Implementation", "FinFET", "Process Technology", "Layout Editor",

		// Analog and mixed signal
		"Analog Design", "Analog IC Design", "Transistor Level Design", "Schematic Design",
		"SPICE Simulation", "Noise Analysis", "PVT", "Process Voltage Temperature",
		"Matching", "Bandgap References", "LDO", "Low Dropout Regulator", "PLL", "Phase-Locked Loop",
		"ADC", "Analog-to-Digital Converter", "DAC", "Digital-to-Analog Converter", "Op-Amp",
		"Filters", "Oscillators", "RF Design", "Radio Frequency", "Mixed-Signal Simulation",
		"Cadence Virtuoso", "Spectre", "HSPICE", "Eldo", "ADE", "Analog Design Environment",
		"Analog FastSPICE", "Keysight ADS", "EMX", "Momentum",
		"Custom Layout", "Device Physics", "CMOS", "Bipolar", "BiCMOS", "Power Management IC",
		"PMIC", "Data Converters", "Amplifiers", "Transceivers", "Analog Front End", "AFE",
		"Analog Mixed-Signal", "AMS Design", "Mixed-Signal Verification", "Co-simulation",
		"Verilog-AMS", "AMS Designer", "Custom Compiler", "Xcelium AMS", "Questa AMS",
		"Behavioral Modeling", "Top-level Integration", "System-level Verification",
		"Real-Number Modeling", "RNM", "Mixed Signal Flow",

		// FPGA
		"FPGA", "FPGA Development", "Xilinx Vivado", "AMD Vivado", "Intel Quartus Prime",
		"Altera Quartus", "Lattice Diamond", "Libero SoC",
		"Logic Optimization", "IP Integration", "On-chip Debugging", "ILA", "VIO",
		"HLS", "Board Bring-up", "System Integration",
		"Synthesis Constraints", "Place and Route",
		"FPGA Architecture", "Hardware Description Language", "HDL", "MicroBlaze", "Zynq",
		"NIOS", "Platform Design", "Embedded Processor",

		// IP and silicon
		"IP Design", "IP Core Development", "IP Verification",
		"IP Hardening", "IP Delivery", "Library Characterization", "Standard Cell Libraries",
		"IO Libraries", "Memory Compilers", "Characterization Tools", "Cadence Liberate",
		"Synopsys SiliconSmart", "Timing Models",
		"Power Models", "Noise Models", "IP Reuse", "Design IP", "Test IP",
		"EDA Tools", "Foundry Process", "PDK", "Process Design Kit",
		"Test Chip", "Test Chip Development", "Silicon Validation", "Post-Silicon Validation",
		"Bring-up", "Characterization", "Measurement", "Yield Analysis",
		"Failure Analysis", "FA", "Wafer Test", "Package Test", "Production Test",
		"ATE Test Program", "Parametric Test", "Functional Test",
		"Silicon Debug", "Data Analysis", "Statistical Process Control", "SPC",
		"Product Engineering", "Reliability Testing",
	}
}
