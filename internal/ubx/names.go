package ubx

import "fmt"

// UBX message class constants (interface description section 32.6)
const (
	ClassNAV      = 0x01 // Navigation results
	ClassRXM      = 0x02 // Receiver manager
	ClassINF      = 0x04 // Information strings
	ClassACK      = 0x05 // ACK/NAK replies to CFG messages
	ClassCFG      = 0x06 // Configuration
	ClassUPD      = 0x09 // Firmware update
	ClassMON      = 0x0a // Monitoring
	ClassAID      = 0x0b // AssistNow aiding (legacy)
	ClassTIM      = 0x0d // Timing
	ClassESF      = 0x10 // External sensor fusion
	ClassMGA      = 0x13 // Multiple GNSS assistance
	ClassLOG      = 0x21 // Data logger
	ClassSEC      = 0x27 // Security
	ClassHNR      = 0x28 // High-rate navigation results
	ClassNMEAStd  = 0xf0 // NMEA standard messages carried over UBX
	ClassNMEAProp = 0xf1 // NMEA proprietary (PUBX) messages
	ClassRTCM3    = 0xf5 // RTCM3 correction messages
)

// ClassName returns the UBX mnemonic for a message class
func ClassName(class byte) string {
	switch class {
	case ClassNAV:
		return "NAV"
	case ClassRXM:
		return "RXM"
	case ClassINF:
		return "INF"
	case ClassACK:
		return "ACK"
	case ClassCFG:
		return "CFG"
	case ClassUPD:
		return "UPD"
	case ClassMON:
		return "MON"
	case ClassAID:
		return "AID"
	case ClassTIM:
		return "TIM"
	case ClassESF:
		return "ESF"
	case ClassMGA:
		return "MGA"
	case ClassLOG:
		return "LOG"
	case ClassSEC:
		return "SEC"
	case ClassHNR:
		return "HNR"
	case ClassNMEAStd:
		return "NMEA"
	case ClassNMEAProp:
		return "PUBX"
	case ClassRTCM3:
		return "RTCM3"
	default:
		return fmt.Sprintf("Unknown(0x%02x)", class)
	}
}
