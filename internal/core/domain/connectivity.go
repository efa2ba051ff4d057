package domain

// Channel identifies a connectivity toggle.
type Channel string

const (
	ChannelBluetooth Channel = "bluetooth"
	ChannelWifi      Channel = "wifi"
)

// Side identifies which device a toggle targets.
type Side string

const (
	SideUser     Side = "user"
	SideMerchant Side = "merchant"
)

// Connectivity holds the process-wide link flags. It is not a ledger;
// only explicit toggles mutate it.
type Connectivity struct {
	Bluetooth bool `json:"bluetooth"`
	Wifi      bool `json:"wifi"`
}
