package useragent

// Browser name identifiers
const (
	// BrowserChrome identifies Google Chrome browser
	BrowserChrome = "chrome"

	// BrowserFirefox identifies Mozilla Firefox browser
	BrowserFirefox = "firefox"

	// BrowserSafari identifies Apple Safari browser
	BrowserSafari = "safari"

	// BrowserEdge identifies Microsoft Edge browser
	BrowserEdge = "edge"

	// BrowserOpera identifies Opera browser
	BrowserOpera = "opera"

	// BrowserIE identifies Internet Explorer browser
	BrowserIE = "ie"

	// BrowserSamsung identifies Samsung Internet browser
	BrowserSamsung = "samsung"

	// BrowserUC identifies UC Browser
	BrowserUC = "uc"

	// BrowserHuawei identifies Huawei Browser
	BrowserHuawei = "huawei"

	// BrowserYandex identifies Yandex Browser
	BrowserYandex = "yandex"

	// BrowserSilk identifies Amazon Silk browser shipped with Kindle Fire tablets
	BrowserSilk = "silk"

	// BrowserBlackBerry identifies the stock BlackBerry / BB10 browser
	BrowserBlackBerry = "blackberry"

	// BrowserBada identifies the Samsung Bada (Dolfin) browser
	BrowserBada = "bada"

	// BrowserWindowsPhone identifies the IE Mobile browser on Windows Phone
	BrowserWindowsPhone = "windows phone"

	// BrowserUnknown is used when the browser cannot be determined
	BrowserUnknown = "unknown"
)

// Operating system identifiers
const (
	// OSWindows identifies Microsoft Windows operating system
	OSWindows = "windows"

	// OSWindowsPhone identifies Microsoft Windows Phone operating system
	OSWindowsPhone = "windows phone"

	// OSMacOS identifies Apple macOS operating system
	OSMacOS = "macos"

	// OSiOS identifies Apple iOS mobile operating system
	OSiOS = "ios"

	// OSAndroid identifies Google Android operating system
	OSAndroid = "android"

	// OSBlackBerry identifies BlackBerry OS and BB10
	OSBlackBerry = "blackberry"

	// OSBada identifies Samsung Bada
	OSBada = "bada"

	// OSLinux identifies Linux-based operating systems
	OSLinux = "linux"

	// OSChromeOS identifies Google Chrome OS operating system
	OSChromeOS = "chromeos"

	// OSUnknown is used when the operating system cannot be determined
	OSUnknown = "unknown"
)
