package uvcapply

type RequestType uint8

const (
	RequestTypeVideoInterfaceSetRequest RequestType = 0b00100001
	RequestTypeVideoInterfaceGetRequest RequestType = 0b10100001
)

type RequestCode uint8

const (
	RequestCodeSetCur RequestCode = 0x01
	RequestCodeGetCur RequestCode = 0x81
	RequestCodeGetMin RequestCode = 0x82
	RequestCodeGetMax RequestCode = 0x83
)
