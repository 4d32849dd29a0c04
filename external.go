package x690

/*
external.go implements the ASN.1 EXTERNAL type (tag 8), grounded on
the teacher's pdv.go External shape and the classic X.208 definition
it documents in its ASN.1 comment:

	EXTERNAL ::= [UNIVERSAL 8] IMPLICIT SEQUENCE {
	  direct-reference       OBJECT IDENTIFIER OPTIONAL,
	  indirect-reference     INTEGER OPTIONAL,
	  data-value-descriptor  ObjectDescriptor OPTIONAL,
	  encoding CHOICE {
	    single-ASN1-type [0] ANY,
	    octet-aligned    [1] IMPLICIT OCTET STRING,
	    arbitrary        [2] IMPLICIT BIT STRING } }

spec.md §4.4 requires CER/DER to use only the `syntax` identification
variant, which this package maps onto the classic fields as: a
direct-reference must be present and an indirect-reference must be
absent. BER permits both fields, matching spec.md §8 scenario 6's
indirect-reference-bearing example.
*/

type ExternalEncoding int

const (
	SingleASN1Type ExternalEncoding = iota
	OctetAligned
	Arbitrary
)

/*
External is the decoded/to-be-encoded value of an ASN.1 EXTERNAL.
Data holds the raw content octets of whichever alternative Encoding
selects; for SingleASN1Type this is the complete TLV encoding of the
embedded value.
*/
type External struct {
	DirectReference     *ObjectIdentifier
	IndirectReference   *Integer
	DataValueDescriptor *string
	Encoding            ExternalEncoding
	Data                []byte
}

func EncodeExternal(rule EncodingRule, ext External) (Element, error) {
	if rule != BER {
		if ext.DirectReference == nil {
			return nil, newValueError(ValueInvalid, "EXTERNAL: CER/DER require a direct-reference (syntax) identification")
		}
		if ext.IndirectReference != nil {
			return nil, newValueError(ValueInvalid, "EXTERNAL: indirect-reference identification not permitted under CER/DER")
		}
	}

	var children []Element
	if ext.DirectReference != nil {
		oidElem, err := EncodeOID(rule, *ext.DirectReference)
		if err != nil {
			return nil, err
		}
		children = append(children, oidElem)
	}
	if ext.IndirectReference != nil {
		children = append(children, EncodeInteger(rule, *ext.IndirectReference))
	}
	if ext.DataValueDescriptor != nil {
		desc, err := EncodeRestrictedString(rule, ObjectDescriptor, []byte(*ext.DataValueDescriptor))
		if err != nil {
			return nil, err
		}
		children = append(children, desc)
	}

	var dataElem Element
	switch ext.Encoding {
	case SingleASN1Type:
		core := elementCore{class: ClassContextSpecific, constr: Constructed, tagNumber: 0, value: ext.Data}
		dataElem = wrapCore(rule, core)
	case OctetAligned:
		core := elementCore{class: ClassContextSpecific, constr: Primitive, tagNumber: 1, value: ext.Data}
		dataElem = wrapCore(rule, core)
	case Arbitrary:
		core := elementCore{class: ClassContextSpecific, constr: Primitive, tagNumber: 2, value: ext.Data}
		dataElem = wrapCore(rule, core)
	default:
		return nil, newValueError(ValueInvalid, "EXTERNAL: unrecognized encoding alternative")
	}
	children = append(children, dataElem)

	seq := EncodeSequence(rule, children, false)
	return setUniversalTag(seq, TagExternal), nil
}

func DecodeExternal(e Element) (External, error) {
	if err := e.ValidateTag([]TagClass{ClassUniversal}, []Construction{Constructed}, []int{TagExternal}, "EXTERNAL"); err != nil {
		return External{}, err
	}
	kids, err := decodeChildren(e)
	if err != nil || len(kids) == 0 {
		return External{}, newValueError(ValueInvalid, "EXTERNAL: malformed sequence")
	}

	var out External
	idx := 0

	if idx < len(kids) && kids[idx].TagClass() == ClassUniversal && kids[idx].TagNumber() == TagOID {
		oid, err := DecodeOID(kids[idx])
		if err != nil {
			return External{}, err
		}
		out.DirectReference = &oid
		idx++
	}
	if idx < len(kids) && kids[idx].TagClass() == ClassUniversal && kids[idx].TagNumber() == TagInteger {
		n, err := DecodeInteger(kids[idx])
		if err != nil {
			return External{}, err
		}
		out.IndirectReference = &n
		idx++
	}
	if idx < len(kids) && kids[idx].TagClass() == ClassUniversal && kids[idx].TagNumber() == TagObjectDescriptor {
		data, err := DecodeRestrictedString(kids[idx], ObjectDescriptor)
		if err != nil {
			return External{}, err
		}
		s := string(data)
		out.DataValueDescriptor = &s
		idx++
	}

	if idx >= len(kids) || kids[idx].TagClass() != ClassContextSpecific {
		return External{}, newTagError(TagNumberMismatch, "EXTERNAL: expected encoding alternative")
	}
	switch kids[idx].TagNumber() {
	case 0:
		out.Encoding = SingleASN1Type
	case 1:
		out.Encoding = OctetAligned
	case 2:
		out.Encoding = Arbitrary
	default:
		return External{}, newTagError(TagNumberMismatch, "EXTERNAL: unrecognized encoding alternative tag")
	}
	out.Data = append([]byte(nil), kids[idx].Value()...)

	if e.Rule() != BER {
		if out.DirectReference == nil || out.IndirectReference != nil {
			return External{}, newValueError(ValueInvalid, "EXTERNAL: CER/DER require direct-reference only (syntax identification)")
		}
	}

	return out, nil
}
