package model

// ContainerType задаёт числовой код места хранения предметов (сумка, ретейнер, сундук FC...).
// Коды совпадают с теми, что отдаёт клиент игры в пакетах инвентаря.
type ContainerType int32

// Player bags.
const (
	Bag0 ContainerType = 0
	Bag1 ContainerType = 1
	Bag2 ContainerType = 2
	Bag3 ContainerType = 3
)

// Equipped gear sets.
const (
	GearSet0 ContainerType = 1000
	GearSet1 ContainerType = 1001
)

// Special player containers.
const (
	Currency    ContainerType = 2000
	Crystals    ContainerType = 2001
	Mail        ContainerType = 2003
	KeyItems    ContainerType = 2004
	HandIn      ContainerType = 2005
	DamagedGear ContainerType = 2007
	Examine     ContainerType = 2009
)

// Armory chest, one container per equipment slot.
const (
	ArmoryOff         ContainerType = 3200
	ArmoryHead        ContainerType = 3201
	ArmoryBody        ContainerType = 3202
	ArmoryHand        ContainerType = 3203
	ArmoryWaist       ContainerType = 3204
	ArmoryLegs        ContainerType = 3205
	ArmoryFeet        ContainerType = 3206
	ArmoryNeck        ContainerType = 3207
	ArmoryEar         ContainerType = 3208
	ArmoryWrist       ContainerType = 3209
	ArmoryRing        ContainerType = 3300
	ArmorySoulCrystal ContainerType = 3400
	ArmoryMain        ContainerType = 3500
)

// Chocobo saddlebags.
const (
	SaddleBag0        ContainerType = 4000
	SaddleBag1        ContainerType = 4001
	PremiumSaddleBag0 ContainerType = 4100
	PremiumSaddleBag1 ContainerType = 4101
)

// Retainer containers.
const (
	RetainerBag0         ContainerType = 10000
	RetainerBag1         ContainerType = 10001
	RetainerBag2         ContainerType = 10002
	RetainerBag3         ContainerType = 10003
	RetainerBag4         ContainerType = 10004
	RetainerBag5         ContainerType = 10005
	RetainerBag6         ContainerType = 10006
	RetainerEquippedGear ContainerType = 11000
	RetainerGil          ContainerType = 12000
	RetainerCrystals     ContainerType = 12001
	RetainerMarket       ContainerType = 12002
)

// Free company chest pages.
const (
	FreeCompanyBag0  ContainerType = 20000
	FreeCompanyBag1  ContainerType = 20001
	FreeCompanyBag2  ContainerType = 20002
	FreeCompanyBag3  ContainerType = 20003
	FreeCompanyBag4  ContainerType = 20004
	FreeCompanyBag5  ContainerType = 20005
	FreeCompanyBag6  ContainerType = 20006
	FreeCompanyBag7  ContainerType = 20007
	FreeCompanyBag8  ContainerType = 20008
	FreeCompanyBag9  ContainerType = 20009
	FreeCompanyBag10 ContainerType = 20010
	FreeCompanyGil   ContainerType = 22000
)

// Container labels. Used as the last segment of the INVENTORY.BAG.* translation keys.
const (
	ContainerLabelBag            = "Bag"
	ContainerLabelRetainerBag    = "RetainerBag"
	ContainerLabelRetainerMarket = "RetainerMarket"
	ContainerLabelSaddleBag      = "SaddleBag"
	ContainerLabelFCChest        = "FC_chest"
	ContainerLabelArmory         = "Armory"
	ContainerLabelCurrentGear    = "Current_Gear"
	ContainerLabelOther          = "Other"
)

// ContainerLabels lists every label ContainerName can return.
var ContainerLabels = []string{
	ContainerLabelBag,
	ContainerLabelRetainerBag,
	ContainerLabelRetainerMarket,
	ContainerLabelSaddleBag,
	ContainerLabelFCChest,
	ContainerLabelArmory,
	ContainerLabelCurrentGear,
	ContainerLabelOther,
}

// ContainerName возвращает label категории для кода контейнера.
// Любой неизвестный код (включая отрицательные) даёт ContainerLabelOther.
func ContainerName(c ContainerType) string {
	switch c {
	case Bag0, Bag1, Bag2, Bag3:
		return ContainerLabelBag
	case RetainerBag0, RetainerBag1, RetainerBag2, RetainerBag3,
		RetainerBag4, RetainerBag5, RetainerBag6:
		return ContainerLabelRetainerBag
	case RetainerMarket:
		return ContainerLabelRetainerMarket
	case SaddleBag0, SaddleBag1, PremiumSaddleBag0, PremiumSaddleBag1:
		return ContainerLabelSaddleBag
	case FreeCompanyBag0, FreeCompanyBag1, FreeCompanyBag2, FreeCompanyBag3,
		FreeCompanyBag4, FreeCompanyBag5, FreeCompanyBag6, FreeCompanyBag7,
		FreeCompanyBag8, FreeCompanyBag9, FreeCompanyBag10:
		return ContainerLabelFCChest
	case ArmoryOff, ArmoryHead, ArmoryBody, ArmoryHand, ArmoryWaist,
		ArmoryLegs, ArmoryFeet, ArmoryNeck, ArmoryEar, ArmoryWrist,
		ArmoryRing, ArmorySoulCrystal, ArmoryMain:
		return ContainerLabelArmory
	case GearSet0:
		return ContainerLabelCurrentGear
	}
	return ContainerLabelOther
}

// String returns the container label.
func (c ContainerType) String() string {
	return ContainerName(c)
}

// IsRetainer reports whether the container belongs to a retainer.
func (c ContainerType) IsRetainer() bool {
	return c >= RetainerBag0 && c <= RetainerMarket
}
