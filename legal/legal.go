package legal

import (
	_ "embed"
	"fmt"
)

var (
	//go:embed notice.txt
	AppNotice string
)

func ShowLicenses() {
	fmt.Println(AppNotice)
}
